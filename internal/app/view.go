package app

import "takesix/internal/domain"

// CardView is a card as serialized to clients. A masked card carries
// only Hidden=true; face and value are omitted entirely so a client
// can never recover a concealed play from the payload.
type CardView struct {
	Face   int  `json:"face,omitempty"`
	Value  int  `json:"value,omitempty"`
	Hidden bool `json:"hidden,omitempty"`
}

// SelfView is the requesting player's own unredacted state.
type SelfView struct {
	Name               string     `json:"name"`
	Hand               []CardView `json:"hand"`
	PlayedCard         *CardView  `json:"playedCard,omitempty"`
	Points             int        `json:"points"`
	CollectedPenalties []CardView `json:"collectedPenalties"`
}

// OpponentView is another player as seen by the requesting player: the
// pending play is masked until every play of the turn is committed,
// and the penalty pile is reduced to a count.
type OpponentView struct {
	Name         string    `json:"name"`
	PlayedCard   *CardView `json:"playedCard,omitempty"`
	Points       int       `json:"points"`
	PenaltyCount int       `json:"penaltyCount"`
}

// GameView is the full player-scoped snapshot pushed after every state
// change. Every field is mapped explicitly; nothing is derived by
// reflection over domain types.
type GameView struct {
	Players         []string       `json:"players"`
	WaitingForStack string         `json:"waitingForStack,omitempty"`
	WaitingForCard  []string       `json:"waitingForCard"`
	Stacks          [][]CardView   `json:"stacks"`
	Self            SelfView       `json:"self"`
	Others          []OpponentView `json:"others"`
}

// ViewFor builds the redacted snapshot for one player. Opponents'
// committed plays become visible only once no player owes a play for
// the current turn, so every play of a turn is revealed simultaneously
// or not at all.
func ViewFor(g *domain.Game, token string) GameView {
	revealed := len(g.Pending) == 0

	view := GameView{
		Players:        make([]string, 0, len(g.Order)),
		WaitingForCard: []string{},
		Stacks:         make([][]CardView, domain.StackCount),
	}
	for _, t := range g.Order {
		view.Players = append(view.Players, g.Players[t].Name)
		if g.Pending[t] {
			view.WaitingForCard = append(view.WaitingForCard, g.Players[t].Name)
		}
	}
	if g.Blocked != "" {
		view.WaitingForStack = g.Players[g.Blocked].Name
	}
	for i, stack := range g.Stacks {
		view.Stacks[i] = toCardViews(stack.Cards)
	}

	self, ok := g.Players[token]
	if !ok {
		return view
	}
	view.Self = SelfView{
		Name:               self.Name,
		Hand:               toCardViews(self.Hand),
		PlayedCard:         openCard(self.PlayedCard),
		Points:             self.Score,
		CollectedPenalties: toCardViews(self.CollectedPenalties),
	}

	for _, t := range g.Order {
		if t == token {
			continue
		}
		other := g.Players[t]
		opponent := OpponentView{
			Name:         other.Name,
			Points:       other.Score,
			PenaltyCount: len(other.CollectedPenalties),
		}
		if other.PlayedCard != nil {
			if revealed {
				opponent.PlayedCard = openCard(other.PlayedCard)
			} else {
				opponent.PlayedCard = &CardView{Hidden: true}
			}
		}
		view.Others = append(view.Others, opponent)
	}
	return view
}

func toCardViews(cards []domain.Card) []CardView {
	out := make([]CardView, len(cards))
	for i, card := range cards {
		out[i] = CardView{Face: card.Face, Value: card.Value}
	}
	return out
}

func openCard(card *domain.Card) *CardView {
	if card == nil {
		return nil
	}
	return &CardView{Face: card.Face, Value: card.Value}
}
