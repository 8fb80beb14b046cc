package game

import "github.com/minaorangina/klondike/deck"

// CardID addresses a card in the pool. It is stable for the life of a game.
type CardID int

// NoCard is the null link
const NoCard CardID = -1

// Kind tells a playable card apart from a chain's anchor
type Kind int

const (
	Normal Kind = iota
	Head
)

func (k Kind) String() string {
	if k == Head {
		return "head"
	}
	return "normal"
}

type Visibility int

const (
	FaceDown Visibility = iota
	FaceUp
	Hidden // Head cards are never drawn face up or down
)

var visibilityNames = []string{"face-down", "face-up", "none"}

func (v Visibility) String() string {
	if v < FaceDown || v > Hidden {
		return ""
	}
	return visibilityNames[v]
}

type Highlight int

const (
	NoHighlight Highlight = iota
	DropOk
	DropInvalid
)

var highlightNames = []string{"none", "drop-ok", "drop-invalid"}

func (h Highlight) String() string {
	if h < NoHighlight || h > DropInvalid {
		return ""
	}
	return highlightNames[h]
}

// Group identifies which kind of stack a chain is
type Group int

const (
	Tableau Group = iota
	Foundation
	Stock
	Waste
)

var groupNames = []string{"tableau", "foundation", "stock", "waste"}

func (g Group) String() string {
	if g < Tableau || g > Waste {
		return ""
	}
	return groupNames[g]
}

// Point is a pointer position in screen coordinates
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Sub returns the delta p - q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is a card's on-screen rectangle
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains follows the usual half-open convention: the left and top edges hit, the right and bottom don't
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Card is one entry of the pool.
// Prev and Next are the only chain links; a Head never has a Prev.
type Card struct {
	ID         CardID
	Rank       deck.Rank
	Suit       deck.Suit
	Kind       Kind
	Group      Group // meaningful for Head cards only
	Visibility Visibility
	Highlight  Highlight
	Rect       Rect
	Prev       CardID
	Next       CardID
}

func (c Card) IsHead() bool {
	return c.Kind == Head
}

// Playable reports whether the card can be picked up
func (c Card) Playable() bool {
	return c.Kind == Normal && c.Visibility == FaceUp
}
