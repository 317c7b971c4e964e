package bot

import (
	"math/rand"

	"takesix/internal/domain"
)

// LowestBot always commits its lowest face and, when blocked, absorbs
// the stack that costs the fewest penalty points.
type LowestBot struct{}

func (b *LowestBot) PickCard(game *domain.Game, player *domain.Player) int {
	best := 0
	for i, card := range player.Hand {
		if card.Face < player.Hand[best].Face {
			best = i
		}
	}
	return best
}

func (b *LowestBot) PickStack(game *domain.Game, player *domain.Player) int {
	best := 0
	bestCost := stackPenalty(game.Stacks[0])
	for i := 1; i < domain.StackCount; i++ {
		if cost := stackPenalty(game.Stacks[i]); cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return best
}

func stackPenalty(stack *domain.Stack) int {
	total := 0
	for _, card := range stack.Cards {
		total += card.Value
	}
	return total
}

// RandomBot plays uniformly at random. Useful as a baseline opponent
// and for soak tests.
type RandomBot struct {
	rng *rand.Rand
}

func (b *RandomBot) PickCard(game *domain.Game, player *domain.Player) int {
	return b.rng.Intn(len(player.Hand))
}

func (b *RandomBot) PickStack(game *domain.Game, player *domain.Player) int {
	return b.rng.Intn(domain.StackCount)
}
