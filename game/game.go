package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/klondike/deck"
)

// Options configure a new game. The zero value deals a rank-only game on
// the default layout, shuffled from the clock.
type Options struct {
	Rand   *rand.Rand
	Layout *Layout
	Rules  Rules
}

// Game is one solitaire session: the card pool, the stack heads and the
// interaction state. It is not safe for concurrent use.
type Game struct {
	pool        *Pool
	layout      Layout
	rules       Rules
	tableau     [numTableau]CardID
	foundations [numFoundations]CardID
	stock       CardID
	waste       CardID

	selected     CardID
	dropTarget   CardID
	pointer      Point
	pressedStock bool // the last press landed on the stock's top card
	moves        int
}

// New shuffles a fresh deck and deals it
func New(opts Options) (*Game, error) {
	layout := DefaultLayout()
	if opts.Layout != nil {
		layout = *opts.Layout
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := deck.New()
	d.Shuffle(rng)

	g := &Game{
		pool:       NewPool(),
		layout:     layout,
		rules:      opts.Rules,
		selected:   NoCard,
		dropTarget: NoCard,
	}
	g.addHeads()

	if err := g.deal(d); err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}
	return g, nil
}

func (g *Game) addHeads() {
	l := g.layout
	for i := range g.tableau {
		g.tableau[i] = g.pool.AddHead(Tableau, l.rectAt(l.Tableau[i]))
	}
	for i := range g.foundations {
		g.foundations[i] = g.pool.AddHead(Foundation, l.rectAt(l.Foundations[i]))
	}
	g.stock = g.pool.AddHead(Stock, l.rectAt(l.Stock))
	g.waste = g.pool.AddHead(Waste, l.rectAt(l.Waste))
}

// deal lays out piles of 1..7 with only the top card face up; the
// remaining 24 cards go to the stock face down.
func (g *Game) deal(d deck.Deck) error {
	for i, head := range g.tableau {
		pile := d.Deal(i + 1)
		for k, c := range pile {
			id := CardID(c.ID)
			if err := g.pool.AppendToEnd(head, id); err != nil {
				return err
			}
			if k == len(pile)-1 {
				g.pool.cards[id].Visibility = FaceUp
			}
		}
	}

	for _, c := range d.Deal(len(d)) {
		if err := g.pool.AppendToEnd(g.stock, CardID(c.ID)); err != nil {
			return err
		}
	}

	return g.resetAll()
}

func (g *Game) heads() []CardID {
	heads := make([]CardID, 0, numHeads)
	heads = append(heads, g.tableau[:]...)
	heads = append(heads, g.foundations[:]...)
	return append(heads, g.stock, g.waste)
}

func (g *Game) resetAll() error {
	for _, head := range g.heads() {
		if err := g.layout.ResetPositions(g.pool, head); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Pool() *Pool {
	return g.pool
}

func (g *Game) Layout() Layout {
	return g.layout
}

func (g *Game) Rules() Rules {
	return g.rules
}

// TableauHead returns the head of tableau pile i, or NoCard out of range
func (g *Game) TableauHead(i int) CardID {
	if i < 0 || i >= numTableau {
		return NoCard
	}
	return g.tableau[i]
}

// FoundationHead returns the head of foundation i, or NoCard out of range
func (g *Game) FoundationHead(i int) CardID {
	if i < 0 || i >= numFoundations {
		return NoCard
	}
	return g.foundations[i]
}

func (g *Game) StockHead() CardID {
	return g.stock
}

func (g *Game) WasteHead() CardID {
	return g.waste
}

// Moves counts committed drops and stock draws
func (g *Game) Moves() int {
	return g.moves
}

// Won reports whether every foundation holds a full run
func (g *Game) Won() bool {
	for _, head := range g.foundations {
		if g.pool.ChainLen(head) != int(deck.King) {
			return false
		}
	}
	return true
}
