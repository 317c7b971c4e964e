package domain

import (
	"fmt"
	"math/rand"
)

// Deck is the bag of not-yet-dealt cards. The rand source is injected
// so a fixed seed produces a fully deterministic game.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds the full 104-card universe in face order.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for face := 1; face <= DeckSize; face++ {
		cards = append(cards, NewCard(face))
	}
	return &Deck{cards: cards, rng: rng}
}

// Draw removes and returns n cards. The fixed 104-card, ten-player
// geometry guarantees enough cards for every deal; running dry is a
// configuration bug, so it panics.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.cards) {
		panic(fmt.Sprintf("deck underflow: draw %d with %d remaining", n, len(d.cards)))
	}
	cut := len(d.cards) - n
	drawn := make([]Card, n)
	copy(drawn, d.cards[cut:])
	d.cards = d.cards[:cut]
	return drawn
}

// Return adds cards back to the bag. No ordering is guaranteed.
func (d *Deck) Return(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// Shuffle randomizes the bag order.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
