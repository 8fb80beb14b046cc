package game

import "github.com/minaorangina/klondike/protocol"

func (c Card) view() protocol.CardView {
	v := protocol.CardView{
		X:          c.Rect.X,
		Y:          c.Rect.Y,
		Width:      c.Rect.Width,
		Height:     c.Rect.Height,
		Kind:       c.Kind.String(),
		Visibility: c.Visibility.String(),
		Highlight:  c.Highlight.String(),
	}
	if c.Playable() {
		v.Label = c.Rank.Glyph()
		v.Suit = c.Suit.String()
	}
	return v
}

// View lists every card back to front. Chains are drawn head first, and the
// run being dragged comes last so it stays on top of the piles it passes over.
func (g *Game) View() []protocol.CardView {
	views := make([]protocol.CardView, 0, g.pool.Len())
	for _, head := range g.heads() {
		for id := head; id != NoCard && id != g.selected; id = g.pool.cards[id].Next {
			views = append(views, g.pool.cards[id].view())
		}
	}
	for id := g.selected; id != NoCard; id = g.pool.cards[id].Next {
		views = append(views, g.pool.cards[id].view())
	}
	return views
}

// Board is the outbound message for the current state of the game
func (g *Game) Board(gameID string) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		GameID: gameID,
		State:  g.State().String(),
		Moves:  g.Moves(),
		Won:    g.Won(),
		Cards:  g.View(),
	}
}
