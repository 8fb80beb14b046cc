package game

import "github.com/minaorangina/klondike/deck"

// CanDropOnTableau: build down by one, and only a King starts an empty pile.
func CanDropOnTableau(target, dragged Card) bool {
	return target.Rank == dragged.Rank+1 ||
		(dragged.Rank == deck.King && target.IsHead())
}

// CanDropOnFoundation: build up by one from the empty head (rank 0).
// Foundations take single cards only, never a run.
func CanDropOnFoundation(target, dragged Card) bool {
	return dragged.Next == NoCard && target.Rank+1 == dragged.Rank
}

// Rules selects the drop predicate for a stack group.
// The zero value compares ranks only; StrictSuits adds the suit rules of
// real Klondike (alternate colours on the tableau, one suit per foundation).
type Rules struct {
	StrictSuits bool
}

func (r Rules) CanDrop(g Group, target, dragged Card) bool {
	switch g {
	case Tableau:
		if !CanDropOnTableau(target, dragged) {
			return false
		}
		return !r.StrictSuits || target.IsHead() || target.Suit.Red() != dragged.Suit.Red()
	case Foundation:
		if !CanDropOnFoundation(target, dragged) {
			return false
		}
		return !r.StrictSuits || target.IsHead() || target.Suit == dragged.Suit
	}
	return false
}
