package nakama

import (
	"archsdinos/internal/app"
	pb "archsdinos/proto"
)

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"
	// RpcPlayerStats returns the caller's lifetime totals.
	RpcPlayerStats = "player_stats"

	// MatchNameArchsDinos is the authoritative match handler name registered with Nakama.
	MatchNameArchsDinos = "archsdinos_match"

	// LeaderboardPoints ranks players by points earned across matches.
	LeaderboardPoints = "archsdinos_points"

	// StatsCollection and StatsKey address the per-user totals storage object.
	StatsCollection = "archsdinos_stats"
	StatsKey        = "totals"

	// LabelGame is the game name carried in every match label.
	LabelGame = "archsdinos"
)

// Env keys read from the Nakama runtime environment.
const (
	EnvBotsEnabled     = "archsdinos_bots_enabled"
	EnvBotDelay        = "archsdinos_bot_delay_sec"
	EnvBotFillDelay    = "archsdinos_bot_fill_delay_sec"
	EnvReconnectGrace  = "archsdinos_reconnect_grace_sec"
	EnvGameConfigPath  = "archsdinos_game_config"
	EnvBotIdentityPath = "archsdinos_bot_identities"

	defaultGameConfigPath  = "data/game_config.json"
	defaultBotIdentityPath = "data/bot_identities.json"
	defaultReconnectGrace  = 15
)

// Op codes for client messages and server events, mirrored from pb.OpCode.
const (
	// Client -> Server
	OpStartGame      = int64(pb.OpCode_OP_CODE_START_GAME)
	OpDrawCard       = int64(pb.OpCode_OP_CODE_DRAW_CARD)
	OpPlayDinoHead   = int64(pb.OpCode_OP_CODE_PLAY_DINO_HEAD)
	OpAttachBodyPart = int64(pb.OpCode_OP_CODE_ATTACH_BODY_PART)
	OpProvokeArmy    = int64(pb.OpCode_OP_CODE_PROVOKE_ARMY)
	OpEndTurn        = int64(pb.OpCode_OP_CODE_END_TURN)
	OpRequestState   = int64(pb.OpCode_OP_CODE_REQUEST_STATE)

	// Server -> Client events
	OpActionResult     = int64(pb.OpCode_OP_CODE_ACTION_RESULT) // send privately
	OpPlayerJoined     = int64(pb.OpCode_OP_CODE_PLAYER_JOINED)
	OpPlayerLeft       = int64(pb.OpCode_OP_CODE_PLAYER_LEFT)
	OpGameInitialized  = int64(pb.OpCode_OP_CODE_GAME_INITIALIZED) // send privately
	OpGameStarted      = int64(pb.OpCode_OP_CODE_GAME_STARTED)
	OpGameEnded        = int64(pb.OpCode_OP_CODE_GAME_ENDED)
	OpTurnChanged      = int64(pb.OpCode_OP_CODE_TURN_CHANGED)
	OpCardDrawn        = int64(pb.OpCode_OP_CODE_CARD_DRAWN)
	OpDinoHeadPlayed   = int64(pb.OpCode_OP_CODE_DINO_HEAD_PLAYED)
	OpBodyPartAttached = int64(pb.OpCode_OP_CODE_BODY_PART_ATTACHED)
	OpArchArmyProvoked = int64(pb.OpCode_OP_CODE_ARCH_ARMY_PROVOKED)
	OpBattleResolved   = int64(pb.OpCode_OP_CODE_BATTLE_RESOLVED)
	OpPlayerExpelled   = int64(pb.OpCode_OP_CODE_PLAYER_EXPELLED)
	OpGameState        = int64(pb.OpCode_OP_CODE_GAME_STATE) // send privately
)

var eventOpCodes = map[app.EventKind]int64{
	app.EventGameInitialized:  OpGameInitialized,
	app.EventGameStarted:      OpGameStarted,
	app.EventGameEnded:        OpGameEnded,
	app.EventTurnChanged:      OpTurnChanged,
	app.EventCardDrawn:        OpCardDrawn,
	app.EventDinoHeadPlayed:   OpDinoHeadPlayed,
	app.EventBodyPartAttached: OpBodyPartAttached,
	app.EventArchArmyProvoked: OpArchArmyProvoked,
	app.EventBattleResolved:   OpBattleResolved,
	app.EventPlayerExpelled:   OpPlayerExpelled,
}

// actionNames maps client op codes to the action named in results.
var actionNames = map[int64]string{
	OpStartGame:      "start_game",
	OpDrawCard:       "draw_card",
	OpPlayDinoHead:   "play_dino_head",
	OpAttachBodyPart: "attach_body_part",
	OpProvokeArmy:    "provoke_army",
	OpEndTurn:        "end_turn",
	OpRequestState:   "state",
}
