package bot

import (
	"math/rand"
	"testing"

	"takesix/internal/domain"
)

func testGame(t *testing.T, token string, hand ...int) *domain.Game {
	t.Helper()
	g := domain.NewGame(rand.New(rand.NewSource(1)))
	p := &domain.Player{Name: "bot"}
	for _, face := range hand {
		p.Hand = append(p.Hand, domain.NewCard(face))
	}
	g.Players[token] = p
	g.Order = append(g.Order, token)
	for i, top := range []int{10, 20, 30, 40} {
		g.Stacks[i].Cards = []domain.Card{domain.NewCard(top)}
	}
	return g
}

func TestLowestBotPicksLowestFace(t *testing.T) {
	g := testGame(t, "bot-1", 90, 4, 67)
	b := &LowestBot{}

	if got := b.PickCard(g, g.Players["bot-1"]); got != 1 {
		t.Fatalf("PickCard = %d, want 1 (face 4)", got)
	}
}

func TestLowestBotPicksCheapestStack(t *testing.T) {
	g := testGame(t, "bot-1", 4)
	// Stack 2 is the only multi-card stack but all its cards are cheap;
	// stack 1 holds the expensive 55.
	g.Stacks[1].Cards = []domain.Card{domain.NewCard(55)}
	g.Stacks[2].Cards = []domain.Card{domain.NewCard(1), domain.NewCard(2)}

	b := &LowestBot{}
	got := b.PickStack(g, g.Players["bot-1"])
	// Penalty sums: 3, 7, 2, 3 -> stack 2.
	if got != 2 {
		t.Fatalf("PickStack = %d, want 2", got)
	}
}

func TestRandomBotStaysInBounds(t *testing.T) {
	g := testGame(t, "bot-1", 9, 18, 27)
	b := &RandomBot{rng: rand.New(rand.NewSource(7))}

	for i := 0; i < 50; i++ {
		if card := b.PickCard(g, g.Players["bot-1"]); card < 0 || card >= 3 {
			t.Fatalf("PickCard = %d out of bounds", card)
		}
		if stack := b.PickStack(g, g.Players["bot-1"]); stack < 0 || stack >= domain.StackCount {
			t.Fatalf("PickStack = %d out of bounds", stack)
		}
	}
}

func TestNewAgentUsesIdentityPool(t *testing.T) {
	agent, err := NewAgent(0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	if !IsBot(agent.Token) {
		t.Fatalf("agent token %q not recognized as bot", agent.Token)
	}
	if agent.Name == "" {
		t.Fatalf("agent has no display name")
	}
}

func TestNewBrainRejectsUnknownLevel(t *testing.T) {
	if _, err := NewBrain("galaxy", nil); err == nil {
		t.Fatalf("unknown level accepted")
	}
}
