package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"takesix/internal/app"
	"takesix/internal/bot"
	"takesix/internal/config"
	"takesix/internal/domain"
)

// defaultPlayerName is used when a login carries no name.
const defaultPlayerName = "NoName"

// inbound is one raw frame together with the connection it arrived on.
type inbound struct {
	client  *client
	payload []byte
}

// Server owns the single shared game. All mutation happens on the Run
// goroutine, which alone drains the inbox and the bot tick; handlers
// on other goroutines only ever enqueue.
type Server struct {
	log      *zap.Logger
	cfg      config.Server
	app      *app.Service
	game     *domain.Game
	registry *registry
	inbox    chan inbound
	upgrader websocket.Upgrader

	rng      *rand.Rand
	bots     map[string]*bot.Agent
	botOrder []string
	botDueAt map[string]time.Time
}

// NewServer builds the server with a fresh game in the lobby phase.
func NewServer(cfg config.Server, log *zap.Logger) *Server {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	svc := app.NewService(rng, log)
	return &Server{
		log:      log,
		cfg:      cfg,
		app:      svc,
		game:     svc.NewGame(),
		registry: newRegistry(),
		inbox:    make(chan inbound, 64),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		rng:      rng,
		bots:     make(map[string]*bot.Agent),
		botDueAt: make(map[string]time.Time),
	}
}

// HandleWS upgrades an HTTP request and starts the connection pumps.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := newClient(conn)
	go c.writePump()
	go c.readPump(s.inbox)
}

// Run drains the inbox until the context ends. Once an action is
// dequeued it runs to completion synchronously; there is no
// cancellation mid-action.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.inbox:
			s.dispatch(msg)
		case now := <-ticker.C:
			s.processBots(now)
		}
	}
}

// dispatch validates one inbound frame and routes it. Malformed frames
// are dropped with a diagnostic; nothing aborts the loop.
func (s *Server) dispatch(msg inbound) {
	var req clientMessage
	if err := json.Unmarshal(msg.payload, &req); err != nil {
		s.log.Warn("dropping unparsable message", zap.Error(err))
		return
	}

	switch req.Type {
	case msgLogin:
		s.handleLogin(msg.client, req)
	case msgReconnect:
		s.handleReconnect(msg.client, req)
	case msgStartGame:
		s.handleStartGame(req)
	case msgPlayCard, msgChooseStack:
		s.handleGameplay(req)
	case "":
		s.log.Warn("dropping message without type")
	default:
		s.log.Warn("dropping message of unknown type", zap.String("type", req.Type))
	}
}

func (s *Server) handleLogin(c *client, req clientMessage) {
	name := req.Name
	if name == "" {
		name = defaultPlayerName
	}

	token := s.registry.mint()
	if err := s.app.Join(s.game, token, name); err != nil {
		s.log.Info("login refused", zap.String("name", name), zap.Error(err))
		s.send(c, loginOKMessage{Type: msgLoginOK, Success: false})
		return
	}

	s.registry.bind(token, c)
	s.log.Info("player joined", zap.String("name", name))
	s.send(c, loginOKMessage{Type: msgLoginOK, Success: true, Token: token})
	s.broadcastState()
}

func (s *Server) handleReconnect(c *client, req clientMessage) {
	if req.Token == "" {
		return
	}
	if !s.registry.rebind(req.Token, c) {
		// Unknown token: deliberately no reply, nothing to probe.
		s.log.Debug("reconnect with unknown token ignored")
		return
	}
	s.log.Info("player reconnected", zap.String("name", s.playerName(req.Token)))
	s.send(c, reconnectOKMessage{Type: msgReconnectOK, State: app.ViewFor(s.game, req.Token)})
	s.broadcastState()
}

func (s *Server) handleStartGame(req clientMessage) {
	if _, ok := s.registry.lookup(req.Token); !ok {
		return
	}
	if s.cfg.BotsEnabled && s.game.Phase == domain.PhaseLobby {
		s.fillBots()
	}
	if err := s.app.Start(s.game); err != nil {
		s.log.Debug("start ignored", zap.Error(err))
		return
	}
	s.log.Info("game started", zap.Int("players", len(s.game.Players)))
	s.broadcastAll(startGameMessage{Type: msgStartGame})
	s.broadcastState()
}

func (s *Server) handleGameplay(req clientMessage) {
	if req.Token == "" || req.Index == nil {
		return
	}
	if _, ok := s.registry.lookup(req.Token); !ok {
		return
	}

	var (
		events []app.Event
		err    error
	)
	switch req.Type {
	case msgPlayCard:
		events, err = s.app.PlayCard(s.game, req.Token, *req.Index)
	case msgChooseStack:
		events, err = s.app.ChooseStack(s.game, req.Token, *req.Index)
	}
	if err != nil {
		s.log.Debug("action ignored",
			zap.String("type", req.Type),
			zap.String("name", s.playerName(req.Token)),
			zap.Error(err))
		return
	}

	s.logEvents(events)
	s.broadcastState()
}

// fillBots seats computer players up to the configured count while the
// lobby is still open.
func (s *Server) fillBots() {
	for i := 0; i < s.cfg.BotCount; i++ {
		agent, err := bot.NewAgent(i, s.rng)
		if err != nil {
			s.log.Error("failed to create bot agent", zap.Error(err))
			continue
		}
		if _, exists := s.bots[agent.Token]; exists {
			continue
		}
		if err := s.app.Join(s.game, agent.Token, agent.Name); err != nil {
			s.log.Warn("could not seat bot", zap.String("name", agent.Name), zap.Error(err))
			break
		}
		s.bots[agent.Token] = agent
		s.botOrder = append(s.botOrder, agent.Token)
		s.log.Info("bot seated", zap.String("name", agent.Name))
	}
}

// processBots lets each bot owing an action act after its randomized
// delay. Runs on the dispatcher strand, so bots mutate state under the
// same serialization as human actions.
func (s *Server) processBots(now time.Time) {
	if len(s.bots) == 0 {
		return
	}

	acted := false
	for _, token := range s.botOrder {
		agent := s.bots[token]
		owes := s.game.Blocked == token || (s.game.Blocked == "" && s.game.Pending[token])
		if !owes {
			delete(s.botDueAt, token)
			continue
		}

		due, scheduled := s.botDueAt[token]
		if !scheduled {
			s.botDueAt[token] = now.Add(s.botDelay())
			continue
		}
		if now.Before(due) {
			continue
		}
		delete(s.botDueAt, token)

		var (
			events []app.Event
			err    error
		)
		if s.game.Blocked == token {
			events, err = s.app.ChooseStack(s.game, token, agent.PickStack(s.game))
		} else {
			events, err = s.app.PlayCard(s.game, token, agent.PickCard(s.game))
		}
		if err != nil {
			s.log.Warn("bot action rejected", zap.String("name", agent.Name), zap.Error(err))
			continue
		}
		s.logEvents(events)
		acted = true
	}
	if acted {
		s.broadcastState()
	}
}

func (s *Server) botDelay() time.Duration {
	min, max := s.cfg.BotMinDelaySec, s.cfg.BotMaxDelaySec
	if max < min {
		max = min
	}
	return time.Duration(min+s.rng.Intn(max-min+1)) * time.Second
}

// logEvents writes the turn's action records as the audit trail.
func (s *Server) logEvents(events []app.Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.RevealCardsPayload:
			s.log.Info(string(ev.Kind), zap.Any("plays", p.Plays))
		case app.PlayCardPayload:
			s.log.Info(string(ev.Kind),
				zap.String("player", p.Player),
				zap.Int("stack", p.Stack),
				zap.Int("face", p.Card.Face))
		case app.PickStackPayload:
			s.log.Info(string(ev.Kind),
				zap.String("player", p.Player),
				zap.Int("stack", p.Stack),
				zap.Int("cards", len(p.Cards)))
		}
	}
}

// broadcastState pushes a freshly redacted view to every registered
// session. Each delivery is best-effort and isolated: one slow or dead
// connection never affects another recipient or the game.
func (s *Server) broadcastState() {
	for token, c := range s.registry.clients {
		payload, err := json.Marshal(gameStateMessage{Type: msgGameState, State: app.ViewFor(s.game, token)})
		if err != nil {
			s.log.Error("failed to marshal gamestate", zap.Error(err))
			continue
		}
		if !c.trySend(payload) {
			s.log.Warn("dropped gamestate push", zap.String("name", s.playerName(token)))
		}
	}
}

// broadcastAll sends the same frame to every registered session.
func (s *Server) broadcastAll(message any) {
	payload, err := json.Marshal(message)
	if err != nil {
		s.log.Error("failed to marshal broadcast", zap.Error(err))
		return
	}
	for token, c := range s.registry.clients {
		if !c.trySend(payload) {
			s.log.Warn("dropped broadcast", zap.String("name", s.playerName(token)))
		}
	}
}

func (s *Server) send(c *client, message any) {
	payload, err := json.Marshal(message)
	if err != nil {
		s.log.Error("failed to marshal reply", zap.Error(err))
		return
	}
	if !c.trySend(payload) {
		s.log.Warn("dropped reply")
	}
}

func (s *Server) playerName(token string) string {
	if p, ok := s.game.Players[token]; ok {
		return p.Name
	}
	return "?"
}
