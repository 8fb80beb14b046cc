package game

import (
	"testing"

	"github.com/minaorangina/klondike/deck"
	"github.com/stretchr/testify/require"
)

// emptyGame has its heads laid out but no cards dealt
func emptyGame() *Game {
	g := &Game{
		pool:       NewPool(),
		layout:     DefaultLayout(),
		selected:   NoCard,
		dropTarget: NoCard,
	}
	g.addHeads()
	return g
}

func cardOf(r deck.Rank, s deck.Suit) CardID {
	return CardID(int(s)*13 + int(r) - 1)
}

// put appends cards to head's chain with the given visibility
func put(t *testing.T, g *Game, head CardID, v Visibility, ids ...CardID) {
	t.Helper()

	for _, id := range ids {
		require.NoError(t, g.pool.AppendToEnd(head, id))
		g.pool.cards[id].Visibility = v
	}
	require.NoError(t, g.layout.ResetPositions(g.pool, head))
}

// stockRest puts every card not yet in a chain onto the stock, face down
func stockRest(t *testing.T, g *Game) {
	t.Helper()

	for i := 0; i < deck.Size; i++ {
		id := CardID(i)
		if g.pool.cards[id].Prev == NoCard {
			put(t, g, g.stock, FaceDown, id)
		}
	}
	require.NoError(t, g.pool.Validate())
}

func centre(r Rect) Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// grip is a point on the strip of a card left visible by the cards stacked on it
func grip(r Rect) Point {
	return Point{r.X + r.Width/2, r.Y + 5}
}

func (g *Game) rectOf(id CardID) Rect {
	return g.pool.cards[id].Rect
}

func chainOf(p *Pool, head CardID) []CardID {
	return p.Chain(head)[1:]
}
