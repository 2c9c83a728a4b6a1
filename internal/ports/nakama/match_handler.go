package nakama

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/proto"

	"archsdinos/internal/app"
	"archsdinos/internal/bot"
	"archsdinos/internal/config"
	"archsdinos/internal/ports"
	pb "archsdinos/proto"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
// Game state itself lives in the app service; this tracks seats and presences.
type MatchState struct {
	MatchID              string                         `json:"match_id"`
	Seats                [app.MaxPlayersPerMatch]string `json:"seats"`      // user IDs, empty string means seat is empty
	MaxSeats             int                            `json:"max_seats"`  // seats usable under the configured rules
	OwnerSeat            int                            `json:"owner_seat"` // seat index of the match owner
	Tick                 int64                          `json:"tick"`
	Playing              bool                           `json:"playing"`
	Usernames            map[string]string              `json:"-"`
	Presences            map[string]runtime.Presence    `json:"-"` // UserId -> Presence for targeted messaging
	LeftAt               map[string]int64               `json:"-"` // UserId -> tick a seated player dropped mid-game
	ReconnectGrace       int                            `json:"reconnect_grace"`
	App                  *app.GameActionService         `json:"-"`
	BotsEnabled          bool                           `json:"bots_enabled"`
	BotDelay             int                            `json:"bot_delay"`           // seconds between bot moves
	BotAutoFillDelay     int                            `json:"bot_auto_fill_delay"` // seconds a lone human waits before bots join
	BotWaitUntil         int64                          `json:"bot_wait_until"`
	LastSinglePlayerTick int64                          `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent          `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	return ms.MaxSeats - ms.GetOccupiedSeatCount()
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats[:ms.MaxSeats] {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats[:ms.MaxSeats] {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats[:ms.MaxSeats] {
		if seat != "" && seat == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// newMatchState builds the lobby state of a match from the game config and
// the runtime env.
func newMatchState(matchID string, logger runtime.Logger, stats ports.StatisticsPort, cfg *config.GameConfig, env map[string]string) *MatchState {
	rules := cfg.Rules()
	state := &MatchState{
		MatchID:          matchID,
		MaxSeats:         min(rules.MaxPlayers, app.MaxPlayersPerMatch),
		OwnerSeat:        -1,
		Usernames:        make(map[string]string),
		Presences:        make(map[string]runtime.Presence),
		LeftAt:           make(map[string]int64),
		ReconnectGrace:   defaultReconnectGrace,
		BotDelay:         max(1, int(cfg.BotMoveDelay().Seconds())),
		BotAutoFillDelay: int(cfg.BotFillDelay().Seconds()),
		Bots:             make(map[string]*bot.Agent),
		App: app.NewGameActionService(app.NewGameSessionManager(), app.Options{
			Logger:     logger,
			Statistics: stats,
			Rules:      rules,
		}),
	}

	if val, ok := env[EnvBotsEnabled]; ok {
		state.BotsEnabled = val == "true"
	}
	envInt := func(key string, target *int) {
		if val, ok := env[key]; ok {
			if i, err := strconv.Atoi(val); err == nil && i >= 0 {
				*target = i
			}
		}
	}
	envInt(EnvBotDelay, &state.BotDelay)
	envInt(EnvBotFillDelay, &state.BotAutoFillDelay)
	envInt(EnvReconnectGrace, &state.ReconnectGrace)
	return state
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	if err := bot.LoadIdentities(envOr(env, EnvBotIdentityPath, defaultBotIdentityPath)); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	cfg, err := config.LoadGameConfig(envOr(env, EnvGameConfigPath, defaultGameConfigPath))
	if err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
		cfg = config.Default()
	}

	state := newMatchState(matchID, logger, NewNakamaStatisticsAdapter(nk), cfg, env)

	label, err := state.label().Marshal()
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, label
}

func envOr(env map[string]string, key, fallback string) string {
	if val, ok := env[key]; ok && val != "" {
		return val
	}
	return fallback
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if matchState.Playing {
		// Only a seated player who dropped may come back mid-game.
		if _, dropped := matchState.LeftAt[presence.GetUserId()]; dropped {
			return state, true, ""
		}
		return state, false, "Match in progress"
	}

	if matchState.GetOpenSeatsCount() <= 0 {
		for _, seat := range matchState.Seats[:matchState.MaxSeats] {
			if bot.IsBot(seat) {
				return state, true, ""
			}
		}
		return state, false, "Match full"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		matchState.Presences[userID] = p
		matchState.Usernames[userID] = p.GetUsername()

		if matchState.Playing {
			mh.rejoin(matchState, dispatcher, logger, p)
			continue
		}
		if matchState.seatOf(userID) >= 0 {
			continue
		}

		assigned := false
		for i, seatUserID := range matchState.Seats[:matchState.MaxSeats] {
			if seatUserID == "" {
				matchState.Seats[i] = userID
				assigned = true
				break
			}
		}
		if !assigned {
			for i, seatUserID := range matchState.Seats[:matchState.MaxSeats] {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, userID, i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = userID
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", userID)
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, OpPlayerJoined)
	return matchState
}

// rejoin reattaches a dropped player to the running game and sends them a snapshot.
func (mh *matchHandler) rejoin(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, p runtime.Presence) {
	userID := p.GetUserId()
	delete(state.LeftAt, userID)
	if code := state.App.ReconnectPlayer(state.MatchID, userID, newPresenceCallback(dispatcher, p)); code != app.CodeSuccess {
		logger.Warn("MatchJoin: User %s could not rejoin: %s", userID, code)
		return
	}
	logger.Info("MatchJoin: User %s rejoined the running game.", userID)
	mh.sendState(state, dispatcher, logger, userID)
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)

		if matchState.Playing && matchState.seatOf(userID) >= 0 {
			// Keep the seat for the reconnect grace; events stop until they return.
			matchState.LeftAt[userID] = tick
			matchState.App.ReconnectPlayer(matchState.MatchID, userID, nil)
			logger.Debug("MatchLeave: User %s dropped mid-game at tick %d.", userID, tick)
			continue
		}
		if seat := matchState.seatOf(userID); seat >= 0 {
			matchState.Seats[seat] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", userID, seat)
		}
	}

	if !matchState.Playing {
		mh.reassignOwner(matchState, logger)
		if shouldTerminateNoHumans(matchState.Seats[:]) {
			logger.Info("MatchLeave: Terminating match with no humans.")
			return nil
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, OpPlayerLeft)
	return matchState
}

func (mh *matchHandler) reassignOwner(state *MatchState, logger runtime.Logger) {
	newOwnerSeat := findFirstHumanSeat(state.Seats[:])
	if newOwnerSeat != state.OwnerSeat {
		state.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("Owner set to human seat %d.", newOwnerSeat)
		}
	}
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpDrawCard, OpPlayDinoHead, OpAttachBodyPart, OpProvokeArmy, OpEndTurn:
			mh.handleAction(ctx, matchState, dispatcher, logger, msg)
		case OpRequestState:
			mh.sendState(matchState, dispatcher, logger, msg.GetUserId())
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.Playing {
		if !mh.expelDropped(ctx, matchState, dispatcher, logger) {
			logger.Info("MatchLoop: No humans left mid-game, terminating.")
			matchState.App.Sessions().RemoveSession(matchState.MatchID)
			return nil
		}
		if closed := matchState.App.ExpireTimedOut(ctx); closed > 0 {
			logger.Info("MatchLoop: Match %s hit its time limit.", matchState.MatchID)
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	if matchState.Playing {
		if _, alive := matchState.App.Sessions().GetSession(matchState.MatchID); !alive {
			return mh.backToLobby(matchState, dispatcher, logger)
		}
	}
	return matchState
}

// expelDropped removes players whose reconnect grace ran out and frees their
// seats. It reports whether a human is still seated.
func (mh *matchHandler) expelDropped(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) bool {
	expelled := false
	for userID, leftAt := range state.LeftAt {
		if state.Tick-leftAt < int64(state.ReconnectGrace) {
			continue
		}
		delete(state.LeftAt, userID)
		code := state.App.RemovePlayer(ctx, state.MatchID, userID, "disconnected")
		if seat := state.seatOf(userID); seat >= 0 {
			state.Seats[seat] = ""
		}
		expelled = true
		logger.Info("MatchLoop: Expelled %s after reconnect grace (%s).", userID, code)
	}
	if !expelled {
		return true
	}
	mh.reassignOwner(state, logger)
	if shouldTerminateNoHumans(state.Seats[:]) {
		return false
	}
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastMatchState(state, dispatcher, OpPlayerLeft)
	return true
}

// backToLobby frees the seats of players who are gone once a game is over.
// It returns nil to terminate the match when no human is left.
func (mh *matchHandler) backToLobby(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) interface{} {
	state.Playing = false
	state.BotWaitUntil = 0
	state.LastSinglePlayerTick = 0
	state.LeftAt = make(map[string]int64)
	for i, userID := range state.Seats[:state.MaxSeats] {
		if userID == "" || bot.IsBot(userID) {
			continue
		}
		if _, present := state.Presences[userID]; !present {
			state.Seats[i] = ""
		}
	}
	mh.reassignOwner(state, logger)
	if shouldTerminateNoHumans(state.Seats[:]) {
		logger.Info("MatchLoop: Game over and no humans left, terminating.")
		return nil
	}
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastMatchState(state, dispatcher, OpPlayerLeft)
	logger.Info("MatchLoop: Game over, match %s back in lobby.", state.MatchID)
	return state
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill lobby with bots if there's only one human player after delay.
	if !state.Playing {
		if state.GetHumanPlayerCount() != 1 {
			state.LastSinglePlayerTick = 0
			return
		}
		if state.LastSinglePlayerTick == 0 {
			state.LastSinglePlayerTick = state.Tick
			logger.Debug("processBots: Single player detected, starting auto-fill timer.")
		}
		if state.Tick-state.LastSinglePlayerTick < int64(state.BotAutoFillDelay) {
			return
		}

		added := false
		for i, seat := range state.Seats[:state.MaxSeats] {
			if seat != "" {
				continue
			}
			identity := bot.GetBotIdentity(i)
			if state.seatOf(identity.UserID) >= 0 {
				continue
			}
			agent, err := bot.NewAgent(identity.UserID)
			if err != nil {
				logger.Error("processBots: Failed to create bot agent for %s: %v", identity.UserID, err)
				continue
			}
			state.Seats[i] = identity.UserID
			state.Bots[identity.UserID] = agent
			logger.Info("processBots: Added bot %s (%s) to seat %d", agent.Name, identity.UserID, i)
			added = true
		}
		if added {
			mh.updateLabel(state, dispatcher, logger)
			mh.broadcastMatchState(state, dispatcher, OpPlayerJoined)
		}
		state.LastSinglePlayerTick = 0
		return
	}

	// Bots make at most one move per BotDelay seconds.
	if state.Tick < state.BotWaitUntil {
		return
	}
	for _, userID := range state.Seats[:state.MaxSeats] {
		agent, ok := state.Bots[userID]
		if !ok {
			continue
		}
		move, code, acted := agent.Step(ctx, state.App, state.MatchID)
		if !acted {
			continue
		}
		logger.Debug("processBots: Bot %s played %s (%s)", userID, move.Kind, code)
		state.BotWaitUntil = state.Tick + int64(state.BotDelay)
		return
	}
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if state.Playing {
		mh.sendActionResult(state, dispatcher, logger, senderID, OpStartGame, app.CodeUnexpectedError)
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendActionResult(state, dispatcher, logger, senderID, OpStartGame, app.CodeUnexpectedError)
		return
	}

	activeCount := state.GetOccupiedSeatCount()
	if activeCount < state.App.Rules().MinPlayers {
		logger.Warn("StartGame: Cannot start with %d players. Need at least %d.", activeCount, state.App.Rules().MinPlayers)
		mh.sendActionResult(state, dispatcher, logger, senderID, OpStartGame, app.CodeGameNotStarted)
		return
	}

	if _, err := state.App.StartGame(ctx, state.MatchID, mh.seats(state, dispatcher)); err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendActionResult(state, dispatcher, logger, senderID, OpStartGame, app.CodeUnexpectedError)
		return
	}

	state.Playing = true
	state.BotWaitUntil = state.Tick + int64(state.BotDelay)
	mh.updateLabel(state, dispatcher, logger)
	mh.sendActionResult(state, dispatcher, logger, senderID, OpStartGame, app.CodeSuccess)
	logger.Info("StartGame: Game started with %d players.", activeCount)
}

// seats lists the occupied seats in seat order for a new game.
func (mh *matchHandler) seats(state *MatchState, dispatcher runtime.MatchDispatcher) []app.Seat {
	seats := make([]app.Seat, 0, state.MaxSeats)
	for _, userID := range state.Seats[:state.MaxSeats] {
		if userID == "" {
			continue
		}
		seat := app.Seat{UserID: userID, Username: displayName(state, userID)}
		if bot.IsBot(userID) {
			seat.IsBot = true
		} else if p, ok := state.Presences[userID]; ok {
			seat.Callback = newPresenceCallback(dispatcher, p)
		}
		seats = append(seats, seat)
	}
	return seats
}

func displayName(state *MatchState, userID string) string {
	if name := state.Usernames[userID]; name != "" {
		return name
	}
	if name := bot.GetBotUsername(userID); name != "" {
		return name
	}
	return userID
}

func (mh *matchHandler) handleAction(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	opCode := msg.GetOpCode()
	if !state.Playing {
		mh.sendActionResult(state, dispatcher, logger, senderID, opCode, app.CodeGameNotStarted)
		return
	}

	decode := func(request proto.Message) bool {
		if err := proto.Unmarshal(msg.GetData(), request); err != nil {
			logger.Warn("handleAction: Invalid %s payload from %s: %v", actionNames[opCode], senderID, err)
			mh.sendActionResult(state, dispatcher, logger, senderID, opCode, app.CodeUnexpectedError)
			return false
		}
		return true
	}

	var code app.Code
	switch opCode {
	case OpDrawCard:
		request := &pb.DrawCardRequest{}
		if !decode(request) {
			return
		}
		code = state.App.DrawCard(ctx, state.MatchID, senderID, int(request.GetPile()))
	case OpPlayDinoHead:
		request := &pb.PlayDinoHeadRequest{}
		if !decode(request) {
			return
		}
		code = state.App.PlayDinoHead(ctx, state.MatchID, senderID, int(request.GetCardId()))
	case OpAttachBodyPart:
		request := &pb.AttachBodyPartRequest{}
		if !decode(request) {
			return
		}
		code = state.App.AttachBodyPartToDino(ctx, state.MatchID, senderID, int(request.GetCardId()), int(request.GetHeadCardId()))
	case OpProvokeArmy:
		request := &pb.ProvokeArmyRequest{}
		if !decode(request) {
			return
		}
		code = state.App.ProvokeArchArmy(ctx, state.MatchID, senderID, request.GetArmy())
	case OpEndTurn:
		code = state.App.EndTurn(ctx, state.MatchID, senderID)
	}
	mh.sendActionResult(state, dispatcher, logger, senderID, opCode, code)
}

// sendActionResult sends an ActionResult to a specific user.
func (mh *matchHandler) sendActionResult(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, opCode int64, code app.Code) {
	mh.sendTo(state, dispatcher, logger, userID, OpActionResult, &pb.ActionResult{Action: actionNames[opCode], Code: code.String()})
}

func (mh *matchHandler) sendState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string) {
	view, code := state.App.GameState(state.MatchID, userID)
	if code != app.CodeSuccess {
		mh.sendActionResult(state, dispatcher, logger, userID, OpRequestState, code)
		return
	}
	mh.sendTo(state, dispatcher, logger, userID, OpGameState, toProtoGameState(view))
}

func (mh *matchHandler) sendTo(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, opCode int64, payload proto.Message) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send op %d to %s: Presence not found", opCode, userID)
		return
	}
	data, err := proto.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal op %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, data, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("Failed to send op %d to %s: %v", opCode, userID, err)
	}
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, opCode int64) {
	snapshot := &pb.MatchStateSnapshot{
		Seats:     append([]string(nil), state.Seats[:state.MaxSeats]...),
		OwnerSeat: int32(state.OwnerSeat),
		Tick:      state.Tick,
		Playing:   state.Playing,
	}
	for i, userID := range snapshot.Seats {
		if userID == "" {
			continue
		}
		snapshot.Players = append(snapshot.Players, &pb.LobbyPlayer{
			UserId:      userID,
			Seat:        int32(i),
			IsOwner:     i == state.OwnerSeat,
			IsBot:       bot.IsBot(userID),
			DisplayName: displayName(state, userID),
		})
	}
	data, _ := proto.Marshal(snapshot)
	dispatcher.BroadcastMessage(opCode, data, nil, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := state.label().Marshal()
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d seconds grace", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
