package deck

import (
	"errors"
	"math/rand"
)

const (
	// Size is the number of cards in a full deck
	Size     = 52
	numRanks = 13
)

var ErrOutOfRange = errors.New("arguments out of range")

// Deck represents a deck of cards
type Deck []Card

// New creates a deck of cards in identity order
func New() Deck {
	cards := make(Deck, 0, Size)
	for id := 0; id < Size; id++ {
		cards = append(cards, newCard(id))
	}
	return cards
}

// Shuffle permutes the deck in place with a Fisher-Yates pass.
// Seeding rng is the caller's business and happens once per game.
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
