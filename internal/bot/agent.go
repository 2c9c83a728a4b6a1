package bot

import (
	"context"

	"archsdinos/internal/app"
	"archsdinos/internal/domain"
)

// Actions is the slice of the game service a bot needs to play.
type Actions interface {
	GameState(matchID, userID string) (app.GameStateView, app.Code)
	DrawCard(ctx context.Context, matchID, userID string, pile int) app.Code
	PlayDinoHead(ctx context.Context, matchID, userID string, cardID int) app.Code
	AttachBodyPartToDino(ctx context.Context, matchID, userID string, cardID, headCardID int) app.Code
	ProvokeArchArmy(ctx context.Context, matchID, userID, army string) app.Code
	EndTurn(ctx context.Context, matchID, userID string) app.Code
}

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move based on its view of the match.
func (a *Agent) Play(view app.GameStateView) (Move, error) {
	if view.CurrentTurn != a.ID {
		return Move{Kind: MoveEndTurn}, nil
	}
	return a.Strategy.CalculateMove(view)
}

// Apply performs move against the service on the agent's behalf.
func (a *Agent) Apply(ctx context.Context, actions Actions, matchID string, move Move) app.Code {
	switch move.Kind {
	case MoveDraw:
		return actions.DrawCard(ctx, matchID, a.ID, move.Pile)
	case MovePlayHead:
		return actions.PlayDinoHead(ctx, matchID, a.ID, move.CardID)
	case MoveAttach:
		return actions.AttachBodyPartToDino(ctx, matchID, a.ID, move.CardID, move.HeadID)
	case MoveProvoke:
		return actions.ProvokeArchArmy(ctx, matchID, a.ID, move.Army)
	default:
		return actions.EndTurn(ctx, matchID, a.ID)
	}
}

// Step plays one move if it is the agent's turn. A rejected move is followed
// by EndTurn. The bool reports whether the agent acted.
func (a *Agent) Step(ctx context.Context, actions Actions, matchID string) (Move, app.Code, bool) {
	view, code := actions.GameState(matchID, a.ID)
	if code != app.CodeSuccess {
		return Move{}, code, false
	}
	if view.CurrentTurn != a.ID || view.Phase != domain.PhaseInProgress {
		return Move{}, app.CodeSuccess, false
	}

	move, err := a.Play(view)
	if err != nil {
		move = Move{Kind: MoveEndTurn}
	}
	code = a.Apply(ctx, actions, matchID, move)
	if code != app.CodeSuccess && code != app.CodeGameEnded && move.Kind != MoveEndTurn {
		return move, actions.EndTurn(ctx, matchID, a.ID), true
	}
	return move, code, true
}
