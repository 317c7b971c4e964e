package bot

import (
	"fmt"
	"math/rand"

	"takesix/internal/domain"
)

// Agent is one computer player bound to a game token. It holds no game
// state of its own; every decision reads the authoritative game.
type Agent struct {
	Token string
	Name  string
	brain Brain
}

// NewAgent builds the agent for the i-th bot seat using the identity
// pool for name and strategy.
func NewAgent(i int, rng *rand.Rand) (*Agent, error) {
	identity := GetIdentity(i)
	brain, err := NewBrain(identity.Level, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{
		Token: fmt.Sprintf("%s%d", TokenPrefix, i+1),
		Name:  identity.DisplayName,
		brain: brain,
	}, nil
}

// PickCard returns the hand index the agent commits this turn.
func (a *Agent) PickCard(game *domain.Game) int {
	return a.brain.PickCard(game, game.Players[a.Token])
}

// PickStack returns the stack the agent absorbs when blocked.
func (a *Agent) PickStack(game *domain.Game) int {
	return a.brain.PickStack(game, game.Players[a.Token])
}
