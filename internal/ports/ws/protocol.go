package ws

import (
	"encoding/json"

	"archsdinos/internal/app"
)

// Message types sent by clients.
const (
	TypeQueue          = "queue"
	TypeDrawCard       = "draw_card"
	TypePlayDinoHead   = "play_dino_head"
	TypeAttachBodyPart = "attach_body_part"
	TypeProvokeArmy    = "provoke_army"
	TypeEndTurn        = "end_turn"
	TypeState          = "state"
)

// Message types sent by the server in addition to the game event kinds.
const (
	TypeActionResult = "action_result"
	TypeGameState    = "game_state"
	TypeQueued       = "queued"
)

// Envelope is the frame exchanged in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type outbound struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// ActionResult answers every client message.
type ActionResult struct {
	Action string   `json:"action"`
	Code   app.Code `json:"code"`
}

// QueuedPayload reports the matchmaking queue after a queue request.
type QueuedPayload struct {
	Position int `json:"position"`
	Needed   int `json:"needed"`
}

type drawRequest struct {
	Pile int `json:"pile"`
}

type playHeadRequest struct {
	CardID int `json:"card_id"`
}

type attachRequest struct {
	CardID     int `json:"card_id"`
	HeadCardID int `json:"head_card_id"`
}

type provokeRequest struct {
	Army string `json:"army"`
}
