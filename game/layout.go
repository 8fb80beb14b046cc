package game

import (
	"errors"
	"fmt"
)

const (
	numTableau     = 7
	numFoundations = 4
	numHeads       = numTableau + numFoundations + 2
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout holds the anchor position of every stack and the card geometry
type Layout struct {
	CardWidth   float64 `yaml:"card_width"`
	CardHeight  float64 `yaml:"card_height"`
	Offset      float64 `yaml:"offset"` // vertical step between stacked cards
	Tableau     []Point `yaml:"tableau"`
	Foundations []Point `yaml:"foundations"`
	Stock       Point   `yaml:"stock"`
	Waste       Point   `yaml:"waste"`
}

// DefaultLayout puts the foundations along the top row with the seven
// tableau piles underneath. Stock and waste fan downwards too, so they get
// columns of their own to the right where they can't overlap a tableau pile.
func DefaultLayout() Layout {
	const (
		w, h   = 80, 120
		margin = 20
		gap    = 20
		row2   = margin + h + 40
	)
	col := func(i int) float64 { return float64(margin + i*(w+gap)) }

	l := Layout{
		CardWidth:  w,
		CardHeight: h,
		Offset:     30,
		Stock:      Point{col(numTableau), margin},
		Waste:      Point{col(numTableau + 1), margin},
	}
	for i := 0; i < numFoundations; i++ {
		l.Foundations = append(l.Foundations, Point{col(i), margin})
	}
	for i := 0; i < numTableau; i++ {
		l.Tableau = append(l.Tableau, Point{col(i), row2})
	}
	return l
}

func (l Layout) Validate() error {
	if l.CardWidth <= 0 || l.CardHeight <= 0 {
		return fmt.Errorf("card size %vx%v: %w", l.CardWidth, l.CardHeight, ErrInvalidLayout)
	}
	if l.Offset < 0 {
		return fmt.Errorf("negative offset: %w", ErrInvalidLayout)
	}
	if len(l.Tableau) != numTableau {
		return fmt.Errorf("want %d tableau positions, got %d: %w", numTableau, len(l.Tableau), ErrInvalidLayout)
	}
	if len(l.Foundations) != numFoundations {
		return fmt.Errorf("want %d foundation positions, got %d: %w", numFoundations, len(l.Foundations), ErrInvalidLayout)
	}
	return nil
}

func (l Layout) rectAt(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, Width: l.CardWidth, Height: l.CardHeight}
}

func (l Layout) offsetFor(g Group) float64 {
	if g == Foundation {
		return 0
	}
	return l.Offset
}

// ResetPositions recomputes the rectangle of every card in the chain that
// contains id. The first card after the head covers it exactly; each later
// card sits one offset below its parent. NoCard is a no-op.
func (l Layout) ResetPositions(p *Pool, id CardID) error {
	if id == NoCard {
		return nil
	}
	head, err := p.FindHead(id)
	if err != nil {
		return err
	}

	offset := l.offsetFor(p.cards[head].Group)
	parent := head
	for cur := p.cards[head].Next; cur != NoCard; cur = p.cards[cur].Next {
		rect := p.cards[parent].Rect
		if !p.cards[parent].IsHead() {
			rect.Y += offset
		}
		p.cards[cur].Rect = rect
		parent = cur
	}
	return nil
}
