package app

import "takesix/internal/domain"

// EventKind identifies an action record emitted by a state transition.
type EventKind string

const (
	// EventRevealCards marks the simultaneous reveal of every pending
	// play once the last one is committed.
	EventRevealCards EventKind = "reveal_cards"
	// EventPlayCard marks a play landing on a stack.
	EventPlayCard EventKind = "play_card"
	// EventPickStack marks a full stack being swept into a player's
	// penalty pile.
	EventPickStack EventKind = "pick_stack"
)

// Event is one discrete action record. A successful transition yields
// the records in causal order; the sequence is the authoritative audit
// trail for the turn even though gamestate broadcasts republish the
// full state.
type Event struct {
	Kind    EventKind
	Payload any
}

// RevealCardsPayload lists every revealed play, keyed by player name.
type RevealCardsPayload struct {
	Plays map[string]domain.Card
}

// PlayCardPayload records a card landing on a stack.
type PlayCardPayload struct {
	Player string
	Stack  int
	Card   domain.Card
}

// PickStackPayload records a sweep of a full stack.
type PickStackPayload struct {
	Player string
	Stack  int
	Cards  []domain.Card
}
