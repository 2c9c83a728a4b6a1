package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"archsdinos/internal/app"
	"archsdinos/internal/logging"
	"archsdinos/internal/ports"
	"archsdinos/internal/ports/sqlite"
)

const testSecret = "test-secret"

type harness struct {
	t    *testing.T
	srv  *Server
	http *httptest.Server
	auth *Authenticator
	svc  *app.GameActionService
}

func newHarness(t *testing.T, grace time.Duration, lb Leaderboard) *harness {
	t.Helper()
	logger := logging.Wrap(zap.NewNop())
	svc := app.NewGameActionService(app.NewGameSessionManager(), app.Options{
		Logger: logger,
		Seed:   7,
		Rules: app.Rules{
			MovesPerTurn:    3,
			MaxCardsPerTurn: 2,
			HandSize:        5,
			MinPlayers:      2,
			MaxPlayers:      4,
			MatchDuration:   time.Hour,
		},
	})
	auth := NewAuthenticator(testSecret)
	srv := NewServer(Options{
		Auth:            auth,
		Service:         svc,
		Logger:          logger,
		PlayersPerMatch: 2,
		ReconnectGrace:  grace,
		Leaderboard:     lb,
	})
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Close()
		hs.Close()
	})
	return &harness{t: t, srv: srv, http: hs, auth: auth, svc: svc}
}

func (h *harness) wsURL(token string) string {
	return "ws" + strings.TrimPrefix(h.http.URL, "http") + "/ws?token=" + url.QueryEscape(token)
}

func (h *harness) dial(uid, name string) *websocket.Conn {
	h.t.Helper()
	token, err := h.auth.Issue(Identity{UserID: uid, Username: name}, time.Hour)
	require.NoError(h.t, err)
	conn, _, err := websocket.DefaultDialer.Dial(h.wsURL(token), nil)
	require.NoError(h.t, err)
	h.t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	env := map[string]any{"type": typ}
	if payload != nil {
		env["payload"] = payload
	}
	require.NoError(t, conn.WriteJSON(env))
}

// readUntil skips frames until one of type typ arrives.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var env Envelope
		require.NoError(t, conn.ReadJSON(&env), "waiting for %s", typ)
		if env.Type == typ {
			return env
		}
	}
}

func readResult(t *testing.T, conn *websocket.Conn, action string) app.Code {
	t.Helper()
	for {
		env := readUntil(t, conn, TypeActionResult)
		var res ActionResult
		require.NoError(t, json.Unmarshal(env.Payload, &res))
		if res.Action == action {
			return res.Code
		}
	}
}

// startTable queues alice then bobby and waits for both to see the start.
func (h *harness) startTable() (alice, bobby *websocket.Conn, matchID string) {
	t := h.t
	alice = h.dial("user-1", "alice")
	send(t, alice, TypeQueue, nil)
	require.Equal(t, app.CodeSuccess, readResult(t, alice, TypeQueue))

	bobby = h.dial("user-2", "bobby")
	send(t, bobby, TypeQueue, nil)
	require.Equal(t, app.CodeSuccess, readResult(t, bobby, TypeQueue))

	var started app.GameStartedPayload
	require.NoError(t, json.Unmarshal(readUntil(t, alice, string(app.EventGameStarted)).Payload, &started))
	require.Equal(t, "user-1", started.FirstTurnUserID)
	readUntil(t, bobby, string(app.EventGameStarted))
	return alice, bobby, started.MatchID
}

type stateView struct {
	MatchID          string `json:"match_id"`
	CurrentTurn      string `json:"current_turn"`
	HasDrawnThisTurn bool   `json:"has_drawn_this_turn"`
}

func readState(t *testing.T, conn *websocket.Conn) stateView {
	t.Helper()
	var view stateView
	require.NoError(t, json.Unmarshal(readUntil(t, conn, TypeGameState).Payload, &view))
	return view
}

func TestServer_RejectsBadToken(t *testing.T) {
	h := newHarness(t, time.Minute, nil)
	_, resp, err := websocket.DefaultDialer.Dial(h.wsURL("not-a-token"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_ActionBeforeQueue(t *testing.T) {
	h := newHarness(t, time.Minute, nil)
	alice := h.dial("user-1", "alice")
	send(t, alice, TypeEndTurn, nil)
	require.Equal(t, app.CodeGameNotStarted, readResult(t, alice, TypeEndTurn))
}

func TestServer_QueueStartsMatchAndRoutesActions(t *testing.T) {
	h := newHarness(t, time.Minute, nil)
	alice, bobby, matchID := h.startTable()
	require.NotEmpty(t, matchID)

	send(t, bobby, TypeDrawCard, map[string]int{"pile": 0})
	require.Equal(t, app.CodeNotYourTurn, readResult(t, bobby, TypeDrawCard))

	send(t, alice, TypeDrawCard, nil)
	require.Equal(t, app.CodeUnexpectedError, readResult(t, alice, TypeDrawCard))

	send(t, alice, TypeDrawCard, map[string]int{"pile": 0})
	require.Equal(t, app.CodeSuccess, readResult(t, alice, TypeDrawCard))

	send(t, alice, TypeState, nil)
	view := readState(t, alice)
	require.Equal(t, matchID, view.MatchID)
	require.Equal(t, "user-1", view.CurrentTurn)
	require.True(t, view.HasDrawnThisTurn)
	require.Equal(t, app.CodeSuccess, readResult(t, alice, TypeState))

	send(t, alice, TypeQueue, nil)
	require.Equal(t, app.CodeUnexpectedError, readResult(t, alice, TypeQueue))

	send(t, alice, TypeEndTurn, nil)
	require.Equal(t, app.CodeSuccess, readResult(t, alice, TypeEndTurn))
	readUntil(t, bobby, string(app.EventTurnChanged))

	send(t, alice, "shuffle", nil)
	require.Equal(t, app.CodeUnexpectedError, readResult(t, alice, "shuffle"))
}

func TestServer_ReconnectWithinGrace(t *testing.T) {
	h := newHarness(t, time.Minute, nil)
	alice, _, matchID := h.startTable()
	require.NoError(t, alice.Close())

	again := h.dial("user-1", "alice")
	view := readState(t, again)
	require.Equal(t, matchID, view.MatchID)

	send(t, again, TypeDrawCard, map[string]int{"pile": 0})
	require.Equal(t, app.CodeSuccess, readResult(t, again, TypeDrawCard))
}

func TestServer_ExpelsAfterGrace(t *testing.T) {
	h := newHarness(t, 50*time.Millisecond, nil)
	alice, bobby, matchID := h.startTable()
	require.NoError(t, alice.Close())

	var expelled app.PlayerExpelledPayload
	require.NoError(t, json.Unmarshal(readUntil(t, bobby, string(app.EventPlayerExpelled)).Payload, &expelled))
	require.Equal(t, "user-1", expelled.UserID)
	require.Equal(t, "disconnected", expelled.Reason)

	readUntil(t, bobby, string(app.EventGameEnded))
	_, live := h.svc.Sessions().GetSession(matchID)
	require.False(t, live)

	send(t, bobby, TypeEndTurn, nil)
	require.Equal(t, app.CodeGameNotStarted, readResult(t, bobby, TypeEndTurn))
}

func TestServer_Leaderboard(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.RecordMatch(context.Background(), ports.MatchRecord{
		MatchID:  "m1",
		Reason:   "decks_exhausted",
		WinnerID: "user-1",
		Scores: []ports.PlayerScore{
			{UserID: "user-1", Username: "alice", Points: 7, Rank: 1},
			{UserID: "bot-rex", Username: "Rex", Points: 5, Rank: 2, IsBot: true},
			{UserID: "user-2", Username: "bobby", Points: 2, Rank: 3},
		},
		Started: time.Now().Add(-time.Minute),
		Ended:   time.Now(),
	}))

	h := newHarness(t, time.Minute, store)
	resp, err := http.Get(h.http.URL + "/leaderboard?limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var top []sqlite.PlayerStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&top))
	require.Len(t, top, 2)
	require.Equal(t, "user-1", top[0].UserID)
	require.Equal(t, 1, top[0].Wins)

	bad, err := http.Get(h.http.URL + "/leaderboard?limit=zero")
	require.NoError(t, err)
	bad.Body.Close()
	require.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestServer_LeaderboardDisabled(t *testing.T) {
	h := newHarness(t, time.Minute, nil)
	resp, err := http.Get(h.http.URL + "/leaderboard")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
