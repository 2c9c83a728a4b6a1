package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/proto"

	"archsdinos/internal/app"
	"archsdinos/internal/bot"
	"archsdinos/internal/config"
	pb "archsdinos/proto"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type sentMessage struct {
	opCode    int64
	data      []byte
	presences []runtime.Presence
}

func (m sentMessage) to(userID string) bool {
	if m.presences == nil {
		return true
	}
	for _, p := range m.presences {
		if p.GetUserId() == userID {
			return true
		}
	}
	return false
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	messages  []sentMessage
	lastLabel string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.messages = append(md.messages, sentMessage{opCode: opCode, data: append([]byte(nil), data...), presences: presences})
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.lastLabel = label
	return nil
}

// count returns how many messages with opCode reached userID.
func (md *mockDispatcher) count(opCode int64, userID string) int {
	n := 0
	for _, m := range md.messages {
		if m.opCode == opCode && m.to(userID) {
			n++
		}
	}
	return n
}

type actionResult struct {
	Action string
	Code   app.Code
}

// lastResult decodes the latest action result sent to userID.
func (md *mockDispatcher) lastResult(t *testing.T, userID string) actionResult {
	t.Helper()
	for i := len(md.messages) - 1; i >= 0; i-- {
		m := md.messages[i]
		if m.opCode != OpActionResult || !m.to(userID) {
			continue
		}
		res := &pb.ActionResult{}
		if err := proto.Unmarshal(m.data, res); err != nil {
			t.Fatalf("Failed to decode action result: %v", err)
		}
		var code app.Code
		if err := code.UnmarshalText([]byte(res.GetCode())); err != nil {
			t.Fatalf("Failed to parse result code: %v", err)
		}
		return actionResult{Action: res.GetAction(), Code: code}
	}
	t.Fatalf("No action result sent to %s", userID)
	return actionResult{}
}

// last decodes the latest message with opCode sent to userID into out.
func (md *mockDispatcher) last(t *testing.T, opCode int64, userID string, out proto.Message) {
	t.Helper()
	for i := len(md.messages) - 1; i >= 0; i-- {
		m := md.messages[i]
		if m.opCode != opCode || !m.to(userID) {
			continue
		}
		if err := proto.Unmarshal(m.data, out); err != nil {
			t.Fatalf("Failed to decode op %d: %v", opCode, err)
		}
		return
	}
	t.Fatalf("No op %d sent to %s", opCode, userID)
}

type mockPresence struct {
	userID   string
	username string
}

func (p mockPresence) GetHidden() bool                   { return false }
func (p mockPresence) GetPersistence() bool              { return false }
func (p mockPresence) GetUsername() string               { return p.username }
func (p mockPresence) GetStatus() string                 { return "" }
func (p mockPresence) GetReason() runtime.PresenceReason { return runtime.PresenceReasonUnknown }
func (p mockPresence) GetUserId() string                 { return p.userID }
func (p mockPresence) GetSessionId() string              { return "session-" + p.userID }
func (p mockPresence) GetNodeId() string                 { return "node" }

type mockMatchData struct {
	mockPresence
	opCode int64
	data   []byte
}

func (m mockMatchData) GetOpCode() int64      { return m.opCode }
func (m mockMatchData) GetData() []byte       { return m.data }
func (m mockMatchData) GetReliable() bool     { return true }
func (m mockMatchData) GetReceiveTime() int64 { return 0 }

var (
	ctx    = context.Background()
	alice  = mockPresence{userID: "user-1", username: "alice"}
	bobby  = mockPresence{userID: "user-2", username: "bobby"}
	carole = mockPresence{userID: "user-3", username: "carole"}
)

func msg(from mockPresence, opCode int64, payload proto.Message) runtime.MatchData {
	var data []byte
	if payload != nil {
		var err error
		if data, err = proto.Marshal(payload); err != nil {
			panic(err)
		}
	}
	return mockMatchData{mockPresence: from, opCode: opCode, data: data}
}

func rawMsg(from mockPresence, opCode int64, data []byte) runtime.MatchData {
	return mockMatchData{mockPresence: from, opCode: opCode, data: data}
}

type harness struct {
	t     *testing.T
	mh    *matchHandler
	disp  *mockDispatcher
	state *MatchState
	tick  int64
}

func newHarness(t *testing.T) *harness {
	cfg := config.Default()
	cfg.MaxPlayers = 3
	return &harness{
		t:     t,
		mh:    newMatchHandler(),
		disp:  &mockDispatcher{},
		state: newMatchState("match-1", noopLogger{}, nil, cfg, map[string]string{EnvReconnectGrace: "2"}),
	}
}

func (h *harness) join(presences ...runtime.Presence) {
	h.t.Helper()
	for _, p := range presences {
		if _, ok, reason := h.mh.MatchJoinAttempt(ctx, noopLogger{}, nil, nil, h.disp, h.tick, h.state, p, nil); !ok {
			h.t.Fatalf("join attempt for %s rejected: %s", p.GetUserId(), reason)
		}
	}
	h.mh.MatchJoin(ctx, noopLogger{}, nil, nil, h.disp, h.tick, h.state, presences)
}

func (h *harness) leave(presences ...runtime.Presence) interface{} {
	return h.mh.MatchLeave(ctx, noopLogger{}, nil, nil, h.disp, h.tick, h.state, presences)
}

func (h *harness) loop(messages ...runtime.MatchData) interface{} {
	h.tick++
	return h.mh.MatchLoop(ctx, noopLogger{}, nil, nil, h.disp, h.tick, h.state, messages)
}

func (h *harness) start() {
	h.t.Helper()
	h.join(alice, bobby)
	h.loop(msg(alice, OpStartGame, nil))
	if !h.state.Playing {
		h.t.Fatalf("game did not start: %+v", h.disp.lastResult(h.t, alice.userID))
	}
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{name: "FirstHumanAfterBot", seats: []string{bot1, "user-1", "", ""}, want: 1},
		{name: "AllBots", seats: []string{bot1, bot2, "", ""}, want: -1},
		{name: "AllEmpty", seats: []string{"", "", "", ""}, want: -1},
		{name: "FirstHumanIsSeatZero", seats: []string{"user-1", bot1, "user-2", ""}, want: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
			if got := shouldTerminateNoHumans(test.seats); got != (test.want == -1) {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want == -1)
			}
		})
	}
}

func TestMatchLabel_Marshal(t *testing.T) {
	tests := []struct {
		name  string
		label MatchLabel
		open  float64
		phase string
	}{
		{name: "LobbyState", label: MatchLabel{Open: 3, Phase: phaseLobby}, open: 3, phase: "lobby"},
		{name: "PlayingState", label: MatchLabel{Open: 0, Phase: phasePlaying}, open: 0, phase: "playing"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payload, err := test.label.Marshal()
			if err != nil {
				t.Fatalf("Failed to marshal label: %v", err)
			}
			var got map[string]interface{}
			if err := json.Unmarshal([]byte(payload), &got); err != nil {
				t.Fatalf("Label is not JSON: %v", err)
			}
			if got["open"] != test.open || got["phase"] != test.phase || got["game"] != LabelGame {
				t.Errorf("Got %v", got)
			}
		})
	}
}

func TestMatchJoin_AssignsSeatsAndOwner(t *testing.T) {
	h := newHarness(t)
	h.join(alice, bobby)

	if h.state.Seats[0] != alice.userID || h.state.Seats[1] != bobby.userID {
		t.Fatalf("unexpected seats %v", h.state.Seats)
	}
	if h.state.OwnerSeat != 0 {
		t.Fatalf("expected owner seat 0, got %d", h.state.OwnerSeat)
	}
	if h.state.GetOpenSeatsCount() != 1 {
		t.Fatalf("expected 1 open seat, got %d", h.state.GetOpenSeatsCount())
	}
	if h.disp.count(OpPlayerJoined, alice.userID) == 0 {
		t.Fatal("expected a lobby snapshot broadcast")
	}

	h.leave(alice)
	if h.state.OwnerSeat != 1 {
		t.Fatalf("expected ownership to move to seat 1, got %d", h.state.OwnerSeat)
	}
	if h.state.Seats[0] != "" {
		t.Fatalf("expected seat 0 freed, got %q", h.state.Seats[0])
	}
	if got := h.leave(bobby); got != nil {
		t.Fatal("expected termination once the last human left")
	}
}

func TestMatchJoinAttempt_Rejections(t *testing.T) {
	h := newHarness(t)
	h.join(alice, bobby, carole)

	dave := mockPresence{userID: "user-4"}
	if _, ok, _ := h.mh.MatchJoinAttempt(ctx, noopLogger{}, nil, nil, h.disp, 0, h.state, dave, nil); ok {
		t.Fatal("expected a full lobby to reject")
	}

	h.leave(carole)
	h.loop(msg(alice, OpStartGame, nil))
	if _, ok, reason := h.mh.MatchJoinAttempt(ctx, noopLogger{}, nil, nil, h.disp, 0, h.state, dave, nil); ok || reason != "Match in progress" {
		t.Fatalf("expected mid-game join to be rejected, got ok=%t reason=%q", ok, reason)
	}
}

func TestStartGame_OwnerOnly(t *testing.T) {
	h := newHarness(t)
	h.join(alice)
	h.loop(msg(alice, OpStartGame, nil))
	if got := h.disp.lastResult(t, alice.userID).Code; got != app.CodeGameNotStarted {
		t.Fatalf("expected game_not_started with one player, got %s", got)
	}

	h.join(bobby)
	h.loop(msg(bobby, OpStartGame, nil))
	if h.state.Playing {
		t.Fatal("non-owner started the game")
	}

	h.loop(msg(alice, OpStartGame, nil))
	if !h.state.Playing {
		t.Fatal("owner could not start the game")
	}
	if h.disp.count(OpGameInitialized, alice.userID) != 1 || h.disp.count(OpGameInitialized, bobby.userID) != 1 {
		t.Fatal("expected one private game_initialized per player")
	}
	for _, m := range h.disp.messages {
		if m.opCode == OpGameInitialized && len(m.presences) != 1 {
			t.Fatalf("game_initialized must target a single presence, got %d", len(m.presences))
		}
	}
	var label map[string]interface{}
	if err := json.Unmarshal([]byte(h.disp.lastLabel), &label); err != nil || label["phase"] != phasePlaying {
		t.Fatalf("expected playing label, got %q", h.disp.lastLabel)
	}
}

func TestMatchLoop_ActionsReturnCodes(t *testing.T) {
	h := newHarness(t)
	h.start()

	h.loop(msg(bobby, OpDrawCard, &pb.DrawCardRequest{Pile: 0}))
	if got := h.disp.lastResult(t, bobby.userID); got.Code != app.CodeNotYourTurn || got.Action != "draw_card" {
		t.Fatalf("expected not_your_turn for draw_card, got %+v", got)
	}

	h.loop(msg(alice, OpDrawCard, &pb.DrawCardRequest{Pile: 9}))
	if got := h.disp.lastResult(t, alice.userID).Code; got != app.CodeInvalidDrawPile {
		t.Fatalf("expected invalid_draw_pile, got %s", got)
	}

	h.loop(msg(alice, OpDrawCard, &pb.DrawCardRequest{Pile: 0}))
	if got := h.disp.lastResult(t, alice.userID).Code; got != app.CodeSuccess {
		t.Fatalf("expected success, got %s", got)
	}
	if h.disp.count(OpCardDrawn, bobby.userID) == 0 {
		t.Fatal("expected bobby to hear about the draw")
	}

	h.loop(rawMsg(alice, OpProvokeArmy, []byte("not protobuf")))
	if got := h.disp.lastResult(t, alice.userID).Code; got != app.CodeUnexpectedError {
		t.Fatalf("expected unexpected_error for a bad payload, got %s", got)
	}

	h.loop(msg(alice, OpEndTurn, nil))
	if got := h.disp.lastResult(t, alice.userID).Code; got != app.CodeSuccess {
		t.Fatalf("expected end turn success, got %s", got)
	}
	if h.disp.count(OpTurnChanged, bobby.userID) == 0 {
		t.Fatal("expected a turn_changed event")
	}

	h.loop(msg(bobby, OpRequestState, nil))
	snapshot := &pb.GameStateSnapshot{}
	h.disp.last(t, OpGameState, bobby.userID, snapshot)
	if snapshot.GetCurrentTurn() != bobby.userID || snapshot.GetMatchId() != "match-1" {
		t.Fatalf("unexpected state snapshot %v", snapshot)
	}
	if len(snapshot.GetBoard()) != 3 || snapshot.GetBoard()[0].GetArmy() != "sand" {
		t.Fatalf("expected the board in army order, got %v", snapshot.GetBoard())
	}
}

func TestMatchLeave_GraceThenExpel(t *testing.T) {
	h := newHarness(t)
	h.start()

	h.leave(bobby)
	if _, dropped := h.state.LeftAt[bobby.userID]; !dropped {
		t.Fatal("expected bobby to be in reconnect grace")
	}
	h.loop()
	if !h.state.Playing {
		t.Fatal("game ended before the grace ran out")
	}

	h.loop()
	if h.state.Playing {
		t.Fatal("expected the game to end once bobby was expelled")
	}
	if h.disp.count(OpGameEnded, alice.userID) != 1 {
		t.Fatal("expected alice to get game_ended")
	}
	if h.disp.count(OpGameEnded, bobby.userID) != 0 {
		t.Fatal("a dropped player must not receive events")
	}
	if h.state.Seats[1] != "" || h.state.Seats[0] != alice.userID {
		t.Fatalf("expected only alice seated after the game, got %v", h.state.Seats)
	}
}

func TestMatchLeave_LastHumanExpelledTerminates(t *testing.T) {
	h := newHarness(t)
	h.state.BotsEnabled = true
	h.state.BotAutoFillDelay = 2
	h.state.BotDelay = 1
	h.join(alice)
	for i := 0; i < 3; i++ {
		h.loop()
	}
	if len(h.state.Bots) != 2 {
		t.Fatalf("expected two bots, got %v", h.state.Seats)
	}
	h.loop(msg(alice, OpStartGame, nil))
	if !h.state.Playing {
		t.Fatal("game did not start")
	}

	h.leave(alice)
	var result interface{} = h.state
	for i := 0; i < 50 && result != nil; i++ {
		result = h.loop()
	}
	if result != nil {
		t.Fatalf("expected termination after the last human was expelled, seats %v", h.state.Seats)
	}
	if h.tick > 8 {
		t.Fatalf("match outlived the reconnect grace until tick %d", h.tick)
	}
	if _, alive := h.state.App.Sessions().GetSession(h.state.MatchID); alive {
		t.Fatal("expected the session to be removed")
	}
	if h.state.seatOf(alice.userID) >= 0 {
		t.Fatalf("expected alice's seat freed, got %v", h.state.Seats)
	}
}

func TestMatchLeave_ExpelFreesSeatAndKeepsPlaying(t *testing.T) {
	h := newHarness(t)
	h.join(alice, bobby, carole)
	h.loop(msg(alice, OpStartGame, nil))

	h.leave(carole)
	h.loop()
	h.loop()
	if !h.state.Playing {
		t.Fatal("expected the game to continue with two players")
	}
	if h.state.seatOf(carole.userID) >= 0 {
		t.Fatalf("expected carole's seat freed, got %v", h.state.Seats)
	}
	snapshot := &pb.MatchStateSnapshot{}
	h.disp.last(t, OpPlayerLeft, alice.userID, snapshot)
	if !snapshot.GetPlaying() || len(snapshot.GetPlayers()) != 2 {
		t.Fatalf("unexpected lobby snapshot %v", snapshot)
	}
	if h.disp.count(OpPlayerExpelled, bobby.userID) != 1 {
		t.Fatal("expected bobby to hear about the expulsion")
	}
}

func TestMatchJoin_RejoinWithinGrace(t *testing.T) {
	h := newHarness(t)
	h.start()

	h.leave(bobby)
	h.loop()
	h.join(bobby)

	if _, dropped := h.state.LeftAt[bobby.userID]; dropped {
		t.Fatal("expected grace cleared on rejoin")
	}
	if h.disp.count(OpGameState, bobby.userID) != 1 {
		t.Fatal("expected a snapshot on rejoin")
	}
	h.loop()
	h.loop()
	h.loop()
	if !h.state.Playing {
		t.Fatal("rejoined player was expelled")
	}

	h.loop(msg(alice, OpEndTurn, nil))
	if h.disp.count(OpTurnChanged, bobby.userID) == 0 {
		t.Fatal("expected events to reach bobby again")
	}
}

func TestProcessBots_FillsSoloLobbyAndPlays(t *testing.T) {
	h := newHarness(t)
	h.state.BotsEnabled = true
	h.state.BotAutoFillDelay = 2
	h.state.BotDelay = 1
	h.join(alice)

	h.loop()
	h.loop()
	if h.state.GetHumanPlayerCount() != 1 || h.state.GetOpenSeatsCount() != 2 {
		t.Fatalf("bots joined before the delay: %v", h.state.Seats)
	}
	h.loop()
	if h.state.GetOpenSeatsCount() != 0 || len(h.state.Bots) != 2 {
		t.Fatalf("expected two bots after the delay, got %v", h.state.Seats)
	}

	h.loop(msg(alice, OpStartGame, nil))
	h.loop(msg(alice, OpEndTurn, nil))
	before, _ := h.state.App.GameState(h.state.MatchID, alice.userID)
	if !bot.IsBot(before.CurrentTurn) {
		t.Fatalf("expected a bot turn, got %s", before.CurrentTurn)
	}

	for i := 0; i < 3; i++ {
		h.loop()
	}
	after, code := h.state.App.GameState(h.state.MatchID, alice.userID)
	if code != app.CodeSuccess {
		t.Fatalf("GameState failed: %s", code)
	}
	if after.TurnNumber == before.TurnNumber && after.RemainingMoves == before.RemainingMoves {
		t.Fatal("expected the bot to make a move")
	}
}

func TestPresenceCallback_Deliver(t *testing.T) {
	disp := &mockDispatcher{}
	cb := newPresenceCallback(disp, alice)

	if err := cb.Deliver(ctx, string(app.EventTurnChanged), app.TurnChangedPayload{CurrentUserID: "user-1"}); err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	if len(disp.messages) != 1 || disp.messages[0].opCode != OpTurnChanged || !disp.messages[0].to(alice.userID) {
		t.Fatalf("unexpected messages %+v", disp.messages)
	}
	event := &pb.TurnChangedEvent{}
	if err := proto.Unmarshal(disp.messages[0].data, event); err != nil {
		t.Fatalf("Failed to decode turn_changed: %v", err)
	}
	if event.GetCurrentUserId() != "user-1" {
		t.Fatalf("unexpected event %v", event)
	}

	battle := app.BattleResolvedPayload{Army: "wind", PlayerPowers: map[string]int{"user-2": 4, "user-1": 6}}
	if err := cb.Deliver(ctx, string(app.EventBattleResolved), battle); err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	resolved := &pb.BattleResolvedEvent{}
	disp.last(t, OpBattleResolved, alice.userID, resolved)
	powers := resolved.GetPlayerPowers()
	if len(powers) != 2 || powers[0].GetUserId() != "user-1" || powers[0].GetPower() != 6 {
		t.Fatalf("expected powers sorted by user, got %v", powers)
	}
	if err := cb.Deliver(ctx, string(app.EventGameEnded), struct{}{}); err == nil {
		t.Fatal("expected an error for an unknown payload type")
	}
	if err := cb.Deliver(ctx, "mystery", nil); err == nil {
		t.Fatal("expected an error for an unmapped event")
	}
}
