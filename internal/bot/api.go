package bot

import (
	"strings"

	"takesix/internal/domain"
)

// TokenPrefix marks a game token as belonging to a computer player.
// Bot tokens never enter the session registry, so they are only ever
// compared server-side.
const TokenPrefix = "bot-"

// IsBot reports whether the given token belongs to a computer player.
func IsBot(token string) bool {
	return strings.HasPrefix(token, TokenPrefix)
}

// Brain is the interface every bot strategy implements. Both calls see
// the full authoritative game state; bots run server-side, so there is
// nothing to redact.
type Brain interface {
	// PickCard returns the hand index to commit as the player's play.
	PickCard(game *domain.Game, player *domain.Player) int
	// PickStack returns the stack index to absorb when the player's
	// play is lower than every stack top.
	PickStack(game *domain.Game, player *domain.Player) int
}
