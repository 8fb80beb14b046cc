package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/klondike/deck"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoHead          = errors.New("chain has no head")
	ErrCycle           = errors.New("splice would link a chain into itself")
	ErrBrokenLink      = errors.New("prev and next links disagree")
)

// Pool is the fixed arena of cards. Normal cards occupy IDs 0..51 (ID is the
// card's identity), head cards follow. Cards are never added or removed once
// the pool is built; only their fields and links change.
type Pool struct {
	cards []Card
}

// NewPool builds the 52 normal cards, unlinked and face down
func NewPool() *Pool {
	p := &Pool{cards: make([]Card, 0, deck.Size+numHeads)}
	for _, c := range deck.New() {
		p.cards = append(p.cards, Card{
			ID:         CardID(c.ID),
			Rank:       c.Rank,
			Suit:       c.Suit,
			Kind:       Normal,
			Visibility: FaceDown,
			Prev:       NoCard,
			Next:       NoCard,
		})
	}
	return p
}

// AddHead appends a head sentinel anchored at rect
func (p *Pool) AddHead(group Group, rect Rect) CardID {
	id := CardID(len(p.cards))
	p.cards = append(p.cards, Card{
		ID:         id,
		Kind:       Head,
		Group:      group,
		Visibility: Hidden,
		Rect:       rect,
		Prev:       NoCard,
		Next:       NoCard,
	})
	return id
}

func (p *Pool) Len() int {
	return len(p.cards)
}

func (p *Pool) valid(id CardID) bool {
	return id >= 0 && int(id) < len(p.cards)
}

// Card returns a copy of the card with the given ID. Links only change
// through AppendToEnd and InsertBehind.
func (p *Pool) Card(id CardID) (Card, bool) {
	if !p.valid(id) {
		return Card{}, false
	}
	return p.cards[id], true
}

// FindTail follows Next to the end of the chain containing id.
// NoCard yields NoCard.
func (p *Pool) FindTail(id CardID) CardID {
	if !p.valid(id) {
		return NoCard
	}
	for p.cards[id].Next != NoCard {
		id = p.cards[id].Next
	}
	return id
}

// FindHead follows Prev back to the chain's head
func (p *Pool) FindHead(id CardID) (CardID, error) {
	if !p.valid(id) {
		return NoCard, fmt.Errorf("find head of %d: %w", id, ErrInvalidArgument)
	}
	start := id
	for steps := 0; p.cards[id].Prev != NoCard; steps++ {
		if steps > len(p.cards) {
			return NoCard, fmt.Errorf("find head of %d: %w", start, ErrCycle)
		}
		id = p.cards[id].Prev
	}
	if !p.cards[id].IsHead() {
		return NoCard, fmt.Errorf("card %d: %w", start, ErrNoHead)
	}
	return id, nil
}

// Trailing reports whether target is sub or any card linked after it
func (p *Pool) Trailing(sub, target CardID) bool {
	if !p.valid(sub) || !p.valid(target) {
		return false
	}
	for id := sub; id != NoCard; id = p.cards[id].Next {
		if id == target {
			return true
		}
	}
	return false
}

// Chain lists the cards from head onwards, head included
func (p *Pool) Chain(head CardID) []CardID {
	ids := []CardID{}
	if !p.valid(head) {
		return ids
	}
	for id := head; id != NoCard; id = p.cards[id].Next {
		ids = append(ids, id)
	}
	return ids
}

// ChainLen counts the normal cards in head's chain
func (p *Pool) ChainLen(head CardID) int {
	return len(p.Chain(head)) - 1
}

func (p *Pool) checkMovable(op string, anchor, sub CardID) error {
	if !p.valid(anchor) || !p.valid(sub) {
		return fmt.Errorf("%s(%d, %d): %w", op, anchor, sub, ErrInvalidArgument)
	}
	if p.cards[sub].IsHead() {
		return fmt.Errorf("%s: head %d cannot be moved: %w", op, sub, ErrInvalidArgument)
	}
	if p.Trailing(sub, anchor) {
		return fmt.Errorf("%s(%d, %d): %w", op, anchor, sub, ErrCycle)
	}
	return nil
}

func (p *Pool) detach(sub CardID) {
	if parent := p.cards[sub].Prev; parent != NoCard {
		p.cards[parent].Next = NoCard
	}
	p.cards[sub].Prev = NoCard
}

// AppendToEnd moves sub, together with every card still linked after it,
// onto the tail of anchor's chain.
func (p *Pool) AppendToEnd(anchor, sub CardID) error {
	if err := p.checkMovable("append", anchor, sub); err != nil {
		return err
	}

	tail := p.FindTail(anchor)
	if p.Trailing(sub, tail) {
		// sub already ends anchor's chain
		return nil
	}
	p.detach(sub)
	p.cards[tail].Next = sub
	p.cards[sub].Prev = tail
	return nil
}

// InsertBehind splices sub and its trailing cards directly after anchor.
// Whatever followed anchor is relinked after the inserted run's tail.
func (p *Pool) InsertBehind(anchor, sub CardID) error {
	if err := p.checkMovable("insert", anchor, sub); err != nil {
		return err
	}
	if p.cards[anchor].Next == sub {
		return nil
	}

	p.detach(sub)
	after := p.cards[anchor].Next
	p.cards[anchor].Next = sub
	p.cards[sub].Prev = anchor
	if after != NoCard {
		subTail := p.FindTail(sub)
		p.cards[subTail].Next = after
		p.cards[after].Prev = subTail
	}
	return nil
}

// Validate checks the link invariants over the whole pool: links are
// mutual, heads have no parent, each card has at most one parent, and every
// normal card reaches a head without looping.
func (p *Pool) Validate() error {
	parents := map[CardID]CardID{}
	for i := range p.cards {
		c := &p.cards[i]
		if c.IsHead() && c.Prev != NoCard {
			return fmt.Errorf("head %d has prev %d: %w", c.ID, c.Prev, ErrBrokenLink)
		}
		if c.Next != NoCard {
			if !p.valid(c.Next) || p.cards[c.Next].Prev != c.ID {
				return fmt.Errorf("card %d next %d: %w", c.ID, c.Next, ErrBrokenLink)
			}
			if other, ok := parents[c.Next]; ok {
				return fmt.Errorf("card %d linked from %d and %d: %w", c.Next, other, c.ID, ErrBrokenLink)
			}
			parents[c.Next] = c.ID
		}
		if c.Prev != NoCard {
			if !p.valid(c.Prev) || p.cards[c.Prev].Next != c.ID {
				return fmt.Errorf("card %d prev %d: %w", c.ID, c.Prev, ErrBrokenLink)
			}
		}
	}
	for i := range p.cards {
		if p.cards[i].IsHead() {
			continue
		}
		if _, err := p.FindHead(CardID(i)); err != nil {
			return err
		}
	}
	return nil
}
