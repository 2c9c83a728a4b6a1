// Package ws serves the match engine to plain websocket clients outside
// Nakama. Clients authenticate with a signed token, queue for a table and
// exchange JSON envelopes with the server.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/samber/lo"

	"archsdinos/internal/app"
	"archsdinos/internal/ports/sqlite"
)

const (
	DefaultReconnectGrace = 15 * time.Second
	defaultTopLimit       = 10
	maxTopLimit           = 100
)

// Leaderboard lists the best recorded players.
type Leaderboard interface {
	TopPlayers(ctx context.Context, limit int) ([]sqlite.PlayerStats, error)
}

// Options configures NewServer. Auth, Service and Logger are required.
type Options struct {
	Auth            *Authenticator
	Service         *app.GameActionService
	Logger          runtime.Logger
	PlayersPerMatch int           // defaults to the minimum players of the rules
	ReconnectGrace  time.Duration // defaults to DefaultReconnectGrace
	Leaderboard     Leaderboard   // nil disables GET /leaderboard
	CheckOrigin     func(r *http.Request) bool
}

type graceTimer struct {
	matchID string
	timer   *time.Timer
}

// Server matches queued clients into tables and routes their messages to
// the game service.
type Server struct {
	auth        *Authenticator
	svc         *app.GameActionService
	logger      runtime.Logger
	perMatch    int
	grace       time.Duration
	leaderboard Leaderboard
	upgrader    websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	clients map[string]*Client     // by user id
	queue   []*Client              // waiting for a table, in arrival order
	matches map[string]string      // user id to match id
	pending map[string]*graceTimer // disconnected players inside their grace
}

func NewServer(opts Options) *Server {
	if opts.PlayersPerMatch < 2 {
		opts.PlayersPerMatch = opts.Service.Rules().MinPlayers
	}
	if opts.ReconnectGrace <= 0 {
		opts.ReconnectGrace = DefaultReconnectGrace
	}
	if opts.CheckOrigin == nil {
		opts.CheckOrigin = func(r *http.Request) bool { return true }
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		auth:        opts.Auth,
		svc:         opts.Service,
		logger:      opts.Logger,
		perMatch:    opts.PlayersPerMatch,
		grace:       opts.ReconnectGrace,
		leaderboard: opts.Leaderboard,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     opts.CheckOrigin,
		},
		ctx:     ctx,
		cancel:  cancel,
		clients: make(map[string]*Client),
		matches: make(map[string]string),
		pending: make(map[string]*graceTimer),
	}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.serveWS)
	mux.HandleFunc("GET /leaderboard", s.serveLeaderboard)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

// Close drops every connection and pending grace timer.
func (s *Server) Close() {
	s.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	for uid, g := range s.pending {
		g.timer.Stop()
		delete(s.pending, uid)
	}
	for _, c := range s.clients {
		c.close()
	}
	s.queue = nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	id, err := s.auth.Verify(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithField("user_id", id.UserID).Warn("websocket upgrade failed: %v", err)
		return
	}

	c := newClient(s, conn, id)
	go c.writeLoop()
	s.register(c)
	go c.readLoop()
}

// register makes c the live connection of its user, replacing an older one,
// and reattaches it to a match the user is still seated in.
func (s *Server) register(c *Client) {
	uid := c.id.UserID
	log := s.logger.WithField("user_id", uid)

	s.mu.Lock()
	old := s.clients[uid]
	s.clients[uid] = c
	s.dequeueLocked(uid)
	if g, ok := s.pending[uid]; ok {
		g.timer.Stop()
		delete(s.pending, uid)
	}
	matchID, seated := s.liveMatchLocked(uid)
	if seated {
		if code := s.svc.ReconnectPlayer(matchID, uid, c); code != app.CodeSuccess {
			delete(s.matches, uid)
			seated = false
		}
	}
	s.mu.Unlock()

	if old != nil {
		old.close()
	}
	log.Info("client connected")
	if seated {
		log.WithField("match_id", matchID).Info("client resumed match")
		s.sendState(c, matchID)
	}
}

// disconnect starts the reconnect grace of a seated player.
func (s *Server) disconnect(c *Client) {
	uid := c.id.UserID
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clients[uid] != c {
		return
	}
	delete(s.clients, uid)
	s.dequeueLocked(uid)
	if matchID, seated := s.liveMatchLocked(uid); seated && s.ctx.Err() == nil {
		s.startGraceLocked(uid, matchID)
	}
	s.logger.WithField("user_id", uid).Info("client disconnected")
}

func (s *Server) startGraceLocked(uid, matchID string) {
	s.svc.ReconnectPlayer(matchID, uid, nil)
	g := &graceTimer{matchID: matchID}
	g.timer = time.AfterFunc(s.grace, func() { s.expel(uid, g) })
	s.pending[uid] = g
}

func (s *Server) expel(uid string, g *graceTimer) {
	s.mu.Lock()
	if s.pending[uid] != g {
		s.mu.Unlock()
		return
	}
	delete(s.pending, uid)
	delete(s.matches, uid)
	s.mu.Unlock()

	code := s.svc.RemovePlayer(s.ctx, g.matchID, uid, "disconnected")
	s.logger.WithFields(map[string]interface{}{
		"user_id":  uid,
		"match_id": g.matchID,
		"code":     code.String(),
	}).Info("player expelled after reconnect grace")
}

// liveMatchLocked returns the match uid is seated in, forgetting matches
// that have already ended.
func (s *Server) liveMatchLocked(uid string) (string, bool) {
	matchID, ok := s.matches[uid]
	if !ok {
		return "", false
	}
	if _, live := s.svc.Sessions().GetSession(matchID); !live {
		delete(s.matches, uid)
		return "", false
	}
	return matchID, true
}

func (s *Server) matchOf(uid string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liveMatchLocked(uid)
}

func (s *Server) dequeueLocked(uid string) {
	s.queue = lo.Reject(s.queue, func(c *Client, _ int) bool { return c.id.UserID == uid })
}

func (s *Server) enqueue(c *Client) {
	uid := c.id.UserID
	s.mu.Lock()
	if s.clients[uid] != c {
		s.mu.Unlock()
		return
	}
	if _, seated := s.liveMatchLocked(uid); seated {
		s.mu.Unlock()
		s.reply(c, TypeQueue, app.CodeUnexpectedError)
		return
	}
	if _, queued := lo.Find(s.queue, func(q *Client) bool { return q == c }); !queued {
		s.queue = append(s.queue, c)
	}
	position := lo.IndexOf(s.queue, c) + 1
	var table []*Client
	if len(s.queue) >= s.perMatch {
		table = append(table, s.queue[:s.perMatch]...)
		s.queue = append([]*Client(nil), s.queue[s.perMatch:]...)
	}
	s.mu.Unlock()

	s.reply(c, TypeQueue, app.CodeSuccess)
	_ = c.push(outbound{Type: TypeQueued, Payload: QueuedPayload{Position: position, Needed: s.perMatch}})
	if table != nil {
		s.startMatch(table)
	}
}

func (s *Server) startMatch(table []*Client) {
	matchID := uuid.NewString()
	seats := lo.Map(table, func(c *Client, _ int) app.Seat {
		return app.Seat{UserID: c.id.UserID, Username: c.id.Username, Callback: c}
	})
	log := s.logger.WithField("match_id", matchID)

	s.mu.Lock()
	for _, c := range table {
		s.matches[c.id.UserID] = matchID
	}
	s.mu.Unlock()

	if _, err := s.svc.StartGame(s.ctx, matchID, seats); err != nil {
		log.Error("failed to start match: %v", err)
		s.mu.Lock()
		for _, c := range table {
			delete(s.matches, c.id.UserID)
		}
		s.mu.Unlock()
		for _, c := range table {
			s.reply(c, TypeQueue, app.CodeUnexpectedError)
		}
		return
	}

	// Connections that changed while the table was being dealt are settled
	// now: replaced clients take over the seat, dropped ones get their grace.
	var resumed []*Client
	s.mu.Lock()
	for _, c := range table {
		uid := c.id.UserID
		s.matches[uid] = matchID
		switch cur := s.clients[uid]; {
		case cur == c:
		case cur != nil:
			s.svc.ReconnectPlayer(matchID, uid, cur)
			resumed = append(resumed, cur)
		default:
			if _, waiting := s.pending[uid]; !waiting {
				s.startGraceLocked(uid, matchID)
			}
		}
	}
	s.mu.Unlock()
	for _, c := range resumed {
		s.sendState(c, matchID)
	}
	log.Info("table formed with %d players", len(table))
}

func (s *Server) handle(c *Client, env Envelope) {
	if env.Type == TypeQueue {
		s.enqueue(c)
		return
	}

	uid := c.id.UserID
	matchID, seated := s.matchOf(uid)
	if !seated {
		s.reply(c, env.Type, app.CodeGameNotStarted)
		return
	}

	code := app.CodeUnexpectedError
	switch env.Type {
	case TypeDrawCard:
		var req drawRequest
		if decode(env.Payload, &req) {
			code = s.svc.DrawCard(s.ctx, matchID, uid, req.Pile)
		}
	case TypePlayDinoHead:
		var req playHeadRequest
		if decode(env.Payload, &req) {
			code = s.svc.PlayDinoHead(s.ctx, matchID, uid, req.CardID)
		}
	case TypeAttachBodyPart:
		var req attachRequest
		if decode(env.Payload, &req) {
			code = s.svc.AttachBodyPartToDino(s.ctx, matchID, uid, req.CardID, req.HeadCardID)
		}
	case TypeProvokeArmy:
		var req provokeRequest
		if decode(env.Payload, &req) {
			code = s.svc.ProvokeArchArmy(s.ctx, matchID, uid, req.Army)
		}
	case TypeEndTurn:
		code = s.svc.EndTurn(s.ctx, matchID, uid)
	case TypeState:
		code = s.sendState(c, matchID)
	default:
		s.logger.WithField("user_id", uid).Warn("unknown message type %q", env.Type)
	}
	s.reply(c, env.Type, code)
}

func decode(raw json.RawMessage, v any) bool {
	return len(raw) > 0 && json.Unmarshal(raw, v) == nil
}

func (s *Server) sendState(c *Client, matchID string) app.Code {
	view, code := s.svc.GameState(matchID, c.id.UserID)
	if code != app.CodeSuccess {
		return code
	}
	_ = c.push(outbound{Type: TypeGameState, Payload: view})
	return code
}

func (s *Server) reply(c *Client, action string, code app.Code) {
	if err := c.push(outbound{Type: TypeActionResult, Payload: ActionResult{Action: action, Code: code}}); err != nil {
		s.logger.WithField("user_id", c.id.UserID).Debug("dropped %s result: %v", action, err)
	}
}

func (s *Server) serveLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.leaderboard == nil {
		http.NotFound(w, r)
		return
	}
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, fmt.Sprintf("invalid limit %q", raw), http.StatusBadRequest)
			return
		}
		limit = min(n, maxTopLimit)
	}

	top, err := s.leaderboard.TopPlayers(r.Context(), limit)
	if err != nil {
		s.logger.Error("leaderboard query failed: %v", err)
		http.Error(w, "leaderboard unavailable", http.StatusInternalServerError)
		return
	}
	if top == nil {
		top = []sqlite.PlayerStats{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(top)
}
