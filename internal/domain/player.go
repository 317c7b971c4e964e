package domain

// Player holds the state for one participant. Players are created at
// login and live for the process lifetime; reconnects never recreate
// them.
type Player struct {
	Name               string
	Hand               []Card
	PlayedCard         *Card
	CollectedPenalties []Card
	Score              int
}

// Play moves the hand card at index into the pending play slot. It
// reports false without mutating anything if the index is out of
// bounds or a play is already pending.
func (p *Player) Play(index int) bool {
	if index < 0 || index >= len(p.Hand) || p.PlayedCard != nil {
		return false
	}
	card := p.Hand[index]
	p.Hand = append(p.Hand[:index], p.Hand[index+1:]...)
	p.PlayedCard = &card
	return true
}

// SettleRound adds the collected penalty pile's value to the score.
// Call once per round end, before the pile is surrendered.
func (p *Player) SettleRound() {
	for _, card := range p.CollectedPenalties {
		p.Score += card.Value
	}
}

// SurrenderAll empties the hand, the penalty pile and any pending play
// and returns the cards for recycling into the deck. stray reports
// whether a play was still pending, which means a play survived a
// round boundary and signals a protocol bug upstream; the caller must
// log it.
func (p *Player) SurrenderAll() (cards []Card, stray bool) {
	cards = append(cards, p.Hand...)
	p.Hand = nil
	cards = append(cards, p.CollectedPenalties...)
	p.CollectedPenalties = nil
	if p.PlayedCard != nil {
		cards = append(cards, *p.PlayedCard)
		p.PlayedCard = nil
		stray = true
	}
	return cards, stray
}
