package bot

import (
	"fmt"
	"math/rand"
)

// Level selects a bot strategy.
type Level string

const (
	LevelLowest Level = "lowest"
	LevelRandom Level = "random"
)

// NewBrain creates a strategy for the given level.
func NewBrain(level Level, rng *rand.Rand) (Brain, error) {
	switch level {
	case LevelLowest, "":
		return &LowestBot{}, nil
	case LevelRandom:
		return &RandomBot{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
