package app

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"takesix/internal/domain"
)

var (
	ErrLobbyClosed       = errors.New("lobby is closed")
	ErrLobbyFull         = errors.New("lobby is full")
	ErrNotInLobby        = errors.New("game already started")
	ErrTooFewPlayers     = errors.New("not enough players to start")
	ErrNotPendingPlay    = errors.New("player does not owe a play")
	ErrInvalidCardIndex  = errors.New("card index out of hand bounds")
	ErrStackChoiceOwed   = errors.New("a stack choice is pending")
	ErrNotBlockedPlayer  = errors.New("player is not awaiting a stack choice")
	ErrInvalidStackIndex = errors.New("stack index out of range")
)

// Service contains the game use-cases operating on domain state. Every
// method must be called from a single strand of execution; the
// dispatcher loop is the sole caller in production.
type Service struct {
	rng *rand.Rand
	log *zap.Logger
}

// NewService constructs a Service with the provided rng and logger or
// time-seeded / no-op defaults.
func NewService(rng *rand.Rand, log *zap.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{rng: rng, log: log}
}

// NewGame creates the single shared game in the lobby phase.
func (s *Service) NewGame() *domain.Game {
	return domain.NewGame(s.rng)
}

// Join adds a player while the lobby is open and capacity allows. On
// failure nothing is mutated.
func (s *Service) Join(g *domain.Game, token, name string) error {
	if g.Phase != domain.PhaseLobby {
		return ErrLobbyClosed
	}
	if len(g.Players) >= MaxPlayers {
		return ErrLobbyFull
	}
	g.Players[token] = &domain.Player{Name: name}
	g.Order = append(g.Order, token)
	return nil
}

// Start closes the lobby and deals the first round.
func (s *Service) Start(g *domain.Game) error {
	if g.Phase != domain.PhaseLobby {
		return ErrNotInLobby
	}
	if len(g.Players) < MinPlayersToStartGame {
		return ErrTooFewPlayers
	}
	g.Phase = domain.PhaseAwaitingCards
	s.resetRound(g)
	return nil
}

// PlayCard commits the hand card at index as token's play. When the
// last owed play arrives the whole turn resolves and the resulting
// action records are returned in causal order.
func (s *Service) PlayCard(g *domain.Game, token string, index int) ([]Event, error) {
	if g.Blocked != "" {
		return nil, ErrStackChoiceOwed
	}
	if !g.Pending[token] {
		return nil, ErrNotPendingPlay
	}
	player := g.Players[token]
	if !player.Play(index) {
		return nil, ErrInvalidCardIndex
	}
	delete(g.Pending, token)
	if len(g.Pending) > 0 {
		return nil, nil
	}

	events := []Event{{Kind: EventRevealCards, Payload: s.revealPayload(g)}}
	events = append(events, s.resolve(g)...)
	return events, nil
}

// ChooseStack resolves the blocked player's play onto the chosen stack
// and resumes turn resolution for the remaining plays.
func (s *Service) ChooseStack(g *domain.Game, token string, index int) ([]Event, error) {
	if g.Blocked == "" || g.Blocked != token {
		return nil, ErrNotBlockedPlayer
	}
	if index < 0 || index >= domain.StackCount {
		return nil, ErrInvalidStackIndex
	}

	events := s.placeOnStack(g, token, index)
	g.Blocked = ""
	g.Phase = domain.PhaseAwaitingCards
	events = append(events, s.resolve(g)...)
	return events, nil
}

func (s *Service) revealPayload(g *domain.Game) RevealCardsPayload {
	plays := make(map[string]domain.Card, len(g.Players))
	for _, token := range g.Order {
		player := g.Players[token]
		if player.PlayedCard != nil {
			plays[player.Name] = *player.PlayedCard
		}
	}
	return RevealCardsPayload{Plays: plays}
}

// resolve processes uncleared plays in ascending face order. Cleared
// plays drop out of the scan, so resuming after a manual stack choice
// continues exactly where the block halted.
func (s *Service) resolve(g *domain.Game) []Event {
	var events []Event
	for {
		order := g.PendingPlayOrder()
		if len(order) == 0 {
			break
		}
		token := order[0]
		face := g.Players[token].PlayedCard.Face
		index, ok := g.TargetStack(face)
		if !ok {
			g.Blocked = token
			g.Phase = domain.PhaseAwaitingStackChoice
			return events
		}
		events = append(events, s.placeOnStack(g, token, index)...)
	}

	g.Phase = domain.PhaseAwaitingCards
	s.markAllPending(g)
	if g.AllHandsEmpty() {
		s.resetRound(g)
	}
	return events
}

// placeOnStack applies the sweep-if-full then append rule for token's
// pending play and clears it.
func (s *Service) placeOnStack(g *domain.Game, token string, index int) []Event {
	player := g.Players[token]
	stack := g.Stacks[index]

	var events []Event
	if stack.Full() {
		taken := stack.Take()
		player.CollectedPenalties = append(player.CollectedPenalties, taken...)
		events = append(events, Event{Kind: EventPickStack, Payload: PickStackPayload{
			Player: player.Name,
			Stack:  index,
			Cards:  taken,
		}})
	}
	stack.Push(*player.PlayedCard)
	events = append(events, Event{Kind: EventPlayCard, Payload: PlayCardPayload{
		Player: player.Name,
		Stack:  index,
		Card:   *player.PlayedCard,
	}})
	player.PlayedCard = nil
	return events
}

func (s *Service) markAllPending(g *domain.Game) {
	for _, token := range g.Order {
		g.Pending[token] = true
	}
}

// resetRound recycles every card back into the deck, settles scores,
// shuffles and redeals: one card per stack, ten per player.
func (s *Service) resetRound(g *domain.Game) {
	for _, stack := range g.Stacks {
		g.Deck.Return(stack.Take())
	}
	for _, token := range g.Order {
		player := g.Players[token]
		player.SettleRound()
		cards, stray := player.SurrenderAll()
		if stray {
			// A play pending across a round boundary means the
			// protocol let one through; recover but leave a trace.
			s.log.Warn("pending play survived into round reset",
				zap.String("player", player.Name))
		}
		g.Deck.Return(cards)
	}

	g.Deck.Shuffle()

	for _, stack := range g.Stacks {
		stack.Push(g.Deck.Draw(1)[0])
	}
	for _, token := range g.Order {
		g.Players[token].Hand = g.Deck.Draw(domain.HandSize)
	}
	s.markAllPending(g)
}
