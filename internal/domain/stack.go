package domain

// Stack is one of the four shared ordered piles. Only the top card's
// face matters for resolution.
type Stack struct {
	Cards []Card
}

// Top returns the face-up card. Stacks are reseeded with one card
// every round, so an empty stack outside a reset is a bug.
func (s *Stack) Top() Card {
	return s.Cards[len(s.Cards)-1]
}

// Len returns the number of cards in the stack.
func (s *Stack) Len() int {
	return len(s.Cards)
}

// Full reports whether the next placement must sweep the stack first.
func (s *Stack) Full() bool {
	return len(s.Cards) >= StackCapacity
}

// Take empties the stack and returns its cards.
func (s *Stack) Take() []Card {
	cards := s.Cards
	s.Cards = nil
	return cards
}

// Push appends a card on top.
func (s *Stack) Push(card Card) {
	s.Cards = append(s.Cards, card)
}
