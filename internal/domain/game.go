package domain

import (
	"math/rand"
	"sort"
)

// Phase is the lifecycle stage of the game.
type Phase string

const (
	// PhaseLobby is the pre-game state where players can join.
	PhaseLobby Phase = "lobby"
	// PhaseAwaitingCards is the in-round state where zero or more
	// players still owe a committed play.
	PhaseAwaitingCards Phase = "awaiting_cards"
	// PhaseAwaitingStackChoice is the in-round state where exactly one
	// player must manually pick a stack to absorb.
	PhaseAwaitingStackChoice Phase = "awaiting_stack_choice"
)

// Game is the authoritative state for the single shared game. It is a
// plain data holder plus pure queries; all mutation happens in the app
// service on a single strand of execution.
type Game struct {
	Phase   Phase
	Players map[string]*Player // token -> player
	Order   []string           // tokens in join order; fixes iteration order
	Stacks  [StackCount]*Stack
	Deck    *Deck
	Pending map[string]bool // tokens still owing a play this turn
	Blocked string          // token awaiting a stack choice, "" if none
}

// NewGame creates a game in the lobby with a full undealt deck.
func NewGame(rng *rand.Rand) *Game {
	g := &Game{
		Phase:   PhaseLobby,
		Players: make(map[string]*Player),
		Deck:    NewDeck(rng),
		Pending: make(map[string]bool),
	}
	for i := range g.Stacks {
		g.Stacks[i] = &Stack{}
	}
	return g
}

// PendingPlayOrder returns the tokens of players holding an uncleared
// play, ascending by played face. Faces are globally unique so the
// order has no ties.
func (g *Game) PendingPlayOrder() []string {
	var tokens []string
	for _, token := range g.Order {
		if g.Players[token].PlayedCard != nil {
			tokens = append(tokens, token)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		return g.Players[tokens[i]].PlayedCard.Face < g.Players[tokens[j]].PlayedCard.Face
	})
	return tokens
}

// TargetStack returns the index of the stack whose top face is the
// greatest value strictly less than face, or ok=false when every top
// is higher and the player must choose manually.
func (g *Game) TargetStack(face int) (index int, ok bool) {
	best := -1
	for i, stack := range g.Stacks {
		top := stack.Top().Face
		if top >= face {
			continue
		}
		if best == -1 || top > g.Stacks[best].Top().Face {
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// AllHandsEmpty reports whether every player has played out their hand.
func (g *Game) AllHandsEmpty() bool {
	for _, player := range g.Players {
		if len(player.Hand) > 0 {
			return false
		}
	}
	return true
}
