package domain

const (
	// DeckSize is the number of unique-face cards in the universe.
	DeckSize = 104
	// StackCount is the number of shared stacks on the table.
	StackCount = 4
	// StackCapacity is the number of cards a stack holds before a
	// placement forces a sweep.
	StackCapacity = 5
	// HandSize is the number of cards dealt to each player per round.
	HandSize = 10
)

// Card is a single card. Face is unique across the universe (1..104)
// and determines resolution order; Value is the penalty cost to the
// card's eventual holder. Cards are never mutated once created.
type Card struct {
	Face  int `json:"face"`
	Value int `json:"value"`
}

// PenaltyValue derives a face's penalty cost from the fixed rule table.
func PenaltyValue(face int) int {
	switch {
	case face == 55:
		return 7
	case face%11 == 0:
		return 5
	case face%10 == 0:
		return 3
	case face%5 == 0:
		return 2
	default:
		return 1
	}
}

// NewCard builds the card for a face with its derived penalty value.
func NewCard(face int) Card {
	return Card{Face: face, Value: PenaltyValue(face)}
}
