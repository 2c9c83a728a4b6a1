package bot

import (
	"archsdinos/internal/app"
)

// MoveKind names the action a bot decided on.
type MoveKind int

const (
	MoveEndTurn MoveKind = iota
	MoveDraw
	MovePlayHead
	MoveAttach
	MoveProvoke
)

func (k MoveKind) String() string {
	switch k {
	case MoveDraw:
		return "draw_card"
	case MovePlayHead:
		return "play_dino_head"
	case MoveAttach:
		return "attach_body_part"
	case MoveProvoke:
		return "provoke_army"
	default:
		return "end_turn"
	}
}

// Move represents the decision made by the AI. Only the fields relevant to
// Kind are set.
type Move struct {
	Kind   MoveKind
	Pile   int
	CardID int
	HeadID int
	Army   string
}

// Brain is the interface that all bot strategies must implement. It picks
// the next single move from the bot's own view of the match.
type Brain interface {
	CalculateMove(view app.GameStateView) (Move, error)
}
