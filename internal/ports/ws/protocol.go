// Package ws adapts the game to a websocket JSON protocol: every
// message is a flat record with a "type" discriminator. Inbound frames
// from all connections funnel into one inbox drained by a single
// consumer, so the game state has exactly one mutator.
package ws

import "takesix/internal/app"

// Client message types.
const (
	msgLogin       = "login"
	msgReconnect   = "reconnect"
	msgStartGame   = "start_game"
	msgPlayCard    = "play_card"
	msgChooseStack = "choose_stack"
)

// Server message types.
const (
	msgLoginOK     = "login_ok"
	msgReconnectOK = "reconnect_ok"
	msgGameState   = "gamestate"
)

// clientMessage is every inbound record. Index is a pointer so a
// missing index is distinguishable from index 0.
type clientMessage struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Token string `json:"token,omitempty"`
	Index *int   `json:"index,omitempty"`
}

type loginOKMessage struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

type reconnectOKMessage struct {
	Type  string       `json:"type"`
	State app.GameView `json:"state"`
}

type startGameMessage struct {
	Type string `json:"type"`
}

type gameStateMessage struct {
	Type  string       `json:"type"`
	State app.GameView `json:"state"`
}
