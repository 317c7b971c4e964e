package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeckHoldsFullUniverse(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))
	if deck.Len() != DeckSize {
		t.Fatalf("deck size = %d, want %d", deck.Len(), DeckSize)
	}

	seen := make(map[int]bool)
	for _, card := range deck.Cards() {
		if card.Face < 1 || card.Face > DeckSize {
			t.Fatalf("face %d out of range", card.Face)
		}
		if seen[card.Face] {
			t.Fatalf("duplicate face %d", card.Face)
		}
		if card.Value != PenaltyValue(card.Face) {
			t.Fatalf("face %d value = %d, want %d", card.Face, card.Value, PenaltyValue(card.Face))
		}
		seen[card.Face] = true
	}
}

func TestDrawAndReturnConserveCards(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(7)))
	deck.Shuffle()

	drawn := deck.Draw(10)
	if len(drawn) != 10 {
		t.Fatalf("drew %d cards, want 10", len(drawn))
	}
	if deck.Len() != DeckSize-10 {
		t.Fatalf("deck size = %d, want %d", deck.Len(), DeckSize-10)
	}

	deck.Return(drawn)
	if deck.Len() != DeckSize {
		t.Fatalf("deck size after return = %d, want %d", deck.Len(), DeckSize)
	}

	faces := make(map[int]bool)
	for _, card := range deck.Cards() {
		faces[card.Face] = true
	}
	if len(faces) != DeckSize {
		t.Fatalf("distinct faces = %d, want %d", len(faces), DeckSize)
	}
}

func TestShuffleIsDeterministicUnderFixedSeed(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(42)))
	b := NewDeck(rand.New(rand.NewSource(42)))
	a.Shuffle()
	b.Shuffle()

	ca, cb := a.Cards(), b.Cards()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("decks diverge at %d: %+v vs %+v", i, ca[i], cb[i])
		}
	}
}

func TestDrawUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on deck underflow")
		}
	}()
	deck := NewDeck(rand.New(rand.NewSource(1)))
	deck.Draw(DeckSize + 1)
}
