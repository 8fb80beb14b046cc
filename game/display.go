package game

import (
	"fmt"
	"io"
	"strings"
)

const (
	faceDownText = "##"
	emptyText    = "--"
)

// SendText writes formatted text to w
func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func (c Card) shortText() string {
	switch {
	case c.IsHead():
		return emptyText
	case c.Visibility != FaceUp:
		return faceDownText
	}
	return c.Rank.Glyph() + c.Suit.String()[:1]
}

func (g *Game) chainText(head CardID) string {
	ids := g.pool.Chain(head)
	if len(ids) == 1 {
		return emptyText
	}
	parts := make([]string, 0, len(ids)-1)
	for _, id := range ids[1:] {
		parts = append(parts, g.pool.cards[id].shortText())
	}
	return strings.Join(parts, " ")
}

func (g *Game) topText(head CardID) string {
	return g.pool.cards[g.pool.FindTail(head)].shortText()
}

// WriteText draws the table as text, one line per pile
func (g *Game) WriteText(w io.Writer) {
	SendText(w, "Stock: %d %s   Waste: %s\n", g.pool.ChainLen(g.stock), g.topText(g.stock), g.topText(g.waste))

	tops := make([]string, 0, numFoundations)
	for _, head := range g.foundations {
		tops = append(tops, g.topText(head))
	}
	SendText(w, "Foundations: %s\n\n", strings.Join(tops, " "))

	for i, head := range g.tableau {
		SendText(w, "%d: %s\n", i+1, g.chainText(head))
	}
	SendText(w, "\nMoves: %d\n", g.moves)
	if g.Won() {
		SendText(w, "You won!\n")
	}
}
