package domain

import "testing"

func TestPenaltyValue(t *testing.T) {
	tests := []struct {
		face     int
		expected int
	}{
		{55, 7},  // the fifty-five
		{11, 5},  // multiple of eleven
		{22, 5},
		{66, 5},
		{10, 3},  // multiple of ten
		{30, 3},
		{100, 3},
		{5, 2},   // multiple of five
		{25, 2},
		{1, 1},
		{7, 1},
		{104, 1},
	}

	for _, tt := range tests {
		if got := PenaltyValue(tt.face); got != tt.expected {
			t.Errorf("PenaltyValue(%d) = %d, want %d", tt.face, got, tt.expected)
		}
	}
}

func TestNewCardDerivesValue(t *testing.T) {
	card := NewCard(55)
	if card.Face != 55 || card.Value != 7 {
		t.Fatalf("NewCard(55) = %+v, want face 55 value 7", card)
	}
}
