package deck

import "fmt"

// Rank represents a rank in a deck of cards, Ace (1) to King (13)
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankGlyphs = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return ""
	}
	return rankNames[r-1]
}

// Glyph is the short form drawn on the face of a card
func (r Rank) Glyph() string {
	if !r.Valid() {
		return ""
	}
	return rankGlyphs[r-1]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return ""
	}
	return suitNames[s]
}

// Red reports whether the suit is a red one
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Card is one of the 52 fixed identities of a deck.
// ID is stable across shuffles; Rank and Suit are derived from it.
type Card struct {
	ID   int
	Rank Rank
	Suit Suit
}

// NewCard constructs the card with the given identity
func NewCard(id int) (Card, error) {
	if id < 0 || id >= Size {
		return Card{}, fmt.Errorf("card identity %d: %w", id, ErrOutOfRange)
	}
	return Card{
		ID:   id,
		Rank: Rank(id%numRanks + 1),
		Suit: Suit(id / numRanks),
	}, nil
}

func newCard(id int) Card {
	c, err := NewCard(id)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
