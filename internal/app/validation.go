package app

import (
	"errors"

	"github.com/heroiclabs/nakama-common/runtime"

	"archsdinos/internal/domain"
)

// ValidationResult is the outcome of one check. The zero value is not a
// success; use pass and fail to build results.
type ValidationResult struct {
	OK      bool
	Code    Code
	Message string
}

// Validated is a ValidationResult carrying the value the check produced.
type Validated[T any] struct {
	ValidationResult
	Value T
}

func pass() ValidationResult {
	return ValidationResult{OK: true, Code: CodeSuccess}
}

func fail(code Code, msg string) ValidationResult {
	return ValidationResult{Code: code, Message: msg}
}

func passWith[T any](v T) Validated[T] {
	return Validated[T]{ValidationResult: pass(), Value: v}
}

func failWith[T any](r ValidationResult) Validated[T] {
	return Validated[T]{ValidationResult: r}
}

// HeadPlay is the validated input of a PlayDinoHead action.
type HeadPlay struct {
	Player *domain.Player
	Card   domain.Card
}

// PartAttach is the validated input of an AttachBodyPartToDino action.
type PartAttach struct {
	Player *domain.Player
	Card   domain.Card
	Dino   *domain.Dino
}

// Provocation is the validated input of a ProvokeArchArmy action.
type Provocation struct {
	Player *domain.Player
	Army   domain.ArmyType
}

// GameValidationService turns rule predicates and state lookups into
// ValidationResults. Checks never mutate the session.
type GameValidationService struct {
	logger runtime.Logger
}

func NewGameValidationService(logger runtime.Logger) *GameValidationService {
	return &GameValidationService{logger: logger}
}

// rule logs an expected rule violation.
func (v *GameValidationService) rule(s *domain.GameSession, userID string, r ValidationResult) ValidationResult {
	v.logger.WithFields(map[string]interface{}{
		"match_id": s.MatchID,
		"user_id":  userID,
		"code":     r.Code.String(),
	}).Info("action rejected: %s", r.Message)
	return r
}

// structural logs a state inconsistency.
func (v *GameValidationService) structural(s *domain.GameSession, userID string, r ValidationResult) ValidationResult {
	v.logger.WithFields(map[string]interface{}{
		"match_id": s.MatchID,
		"user_id":  userID,
		"code":     r.Code.String(),
	}).Warn("inconsistent action: %s", r.Message)
	return r
}

// PlayerInSession checks the user holds a connected seat.
func (v *GameValidationService) PlayerInSession(s *domain.GameSession, userID string) Validated[*domain.Player] {
	p, ok := s.Player(userID)
	if !ok {
		return failWith[*domain.Player](v.structural(s, userID, fail(CodeUnexpectedError, "player not in session")))
	}
	if !p.Connected {
		return failWith[*domain.Player](v.structural(s, userID, fail(CodeUnexpectedError, "player no longer connected")))
	}
	return passWith(p)
}

// GameRunning checks the session is in progress.
func (v *GameValidationService) GameRunning(s *domain.GameSession, userID string) ValidationResult {
	switch s.Phase {
	case domain.PhaseInProgress:
		return pass()
	case domain.PhaseEnded:
		return v.rule(s, userID, fail(CodeGameEnded, "game already ended"))
	default:
		return v.rule(s, userID, fail(CodeGameNotStarted, "game not started"))
	}
}

// TurnOwner checks it is userID's turn.
func (v *GameValidationService) TurnOwner(s *domain.GameSession, userID string) ValidationResult {
	if s.CurrentTurn != userID {
		return v.rule(s, userID, fail(CodeNotYourTurn, "not your turn"))
	}
	return pass()
}

// PileIndex checks the pile number addresses an existing pile.
func (v *GameValidationService) PileIndex(s *domain.GameSession, userID string, pile int) ValidationResult {
	if pile < 0 || pile >= len(s.DrawPiles) {
		return v.structural(s, userID, fail(CodeInvalidDrawPile, "draw pile out of range"))
	}
	return pass()
}

// PileNotEmpty checks the pile still has cards. The index must be valid.
func (v *GameValidationService) PileNotEmpty(s *domain.GameSession, userID string, pile int) ValidationResult {
	if len(s.DrawPiles[pile]) == 0 {
		return v.rule(s, userID, fail(CodeDrawPileEmpty, "draw pile is empty"))
	}
	return pass()
}

// CardInHand looks up a card in the player's hand.
func (v *GameValidationService) CardInHand(s *domain.GameSession, p *domain.Player, cardID int) Validated[domain.Card] {
	c, ok := p.HandCard(cardID)
	if !ok {
		return failWith[domain.Card](v.rule(s, p.UserID, fail(CodeCardNotInHand, "card not in hand")))
	}
	return passWith(c)
}

// DinoExists looks up the dino started by headCardID.
func (v *GameValidationService) DinoExists(s *domain.GameSession, p *domain.Player, headCardID int) Validated[*domain.Dino] {
	d, ok := p.Dinos[headCardID]
	if !ok {
		return failWith[*domain.Dino](v.rule(s, p.UserID, fail(CodeMustAttachToHead, "no dino with that head")))
	}
	return passWith(d)
}

// Attachable checks a body part fits a dino. A limb played before the chest
// is an InvalidCardType like any other slot conflict.
func (v *GameValidationService) Attachable(s *domain.GameSession, userID string, d *domain.Dino, card domain.Card) ValidationResult {
	err := d.CanAttach(card)
	switch {
	case err == nil:
		return pass()
	case errors.Is(err, domain.ErrArmyMismatch):
		return v.rule(s, userID, fail(CodeArmyTypeMismatch, err.Error()))
	default:
		return v.rule(s, userID, fail(CodeInvalidCardType, err.Error()))
	}
}

// Army parses an army name.
func (v *GameValidationService) Army(s *domain.GameSession, userID, raw string) Validated[domain.ArmyType] {
	army, err := domain.ParseArmyType(raw)
	if err != nil {
		return failWith[domain.ArmyType](v.rule(s, userID, fail(CodeInvalidArmyType, err.Error())))
	}
	return passWith(army)
}

// ArmyHasArchs checks the board army can be provoked.
func (v *GameValidationService) ArmyHasArchs(s *domain.GameSession, userID string, army domain.ArmyType) ValidationResult {
	if s.Board.Count(army) == 0 {
		return v.rule(s, userID, fail(CodeNoArchsInArmy, "no archs in army"))
	}
	return pass()
}

// seated runs the state-existence and turn-ownership checks every action starts with.
func (v *GameValidationService) seated(s *domain.GameSession, userID string) Validated[*domain.Player] {
	p := v.PlayerInSession(s, userID)
	if !p.OK {
		return p
	}
	if r := v.GameRunning(s, userID); !r.OK {
		return failWith[*domain.Player](r)
	}
	if r := v.TurnOwner(s, userID); !r.OK {
		return failWith[*domain.Player](r)
	}
	return p
}

// ValidateDraw runs the DrawCard checks in order.
func (v *GameValidationService) ValidateDraw(s *domain.GameSession, userID string, pile int) Validated[*domain.Player] {
	p := v.seated(s, userID)
	if !p.OK {
		return p
	}
	if !domain.CanDrawCard(s, userID) {
		return failWith[*domain.Player](v.rule(s, userID, fail(CodeAlreadyDrewThisTurn, "already drew this turn")))
	}
	if r := v.PileIndex(s, userID, pile); !r.OK {
		return failWith[*domain.Player](r)
	}
	if r := v.PileNotEmpty(s, userID, pile); !r.OK {
		return failWith[*domain.Player](r)
	}
	return p
}

// ValidatePlayHead runs the PlayDinoHead checks in order.
func (v *GameValidationService) ValidatePlayHead(s *domain.GameSession, userID string, cardID int) Validated[HeadPlay] {
	p := v.seated(s, userID)
	if !p.OK {
		return failWith[HeadPlay](p.ValidationResult)
	}
	if !domain.CanPlayCard(s, userID) {
		return failWith[HeadPlay](v.rule(s, userID, fail(CodeAlreadyPlayedTwoCards, "card limit reached")))
	}
	c := v.CardInHand(s, p.Value, cardID)
	if !c.OK {
		return failWith[HeadPlay](c.ValidationResult)
	}
	if !domain.IsValidDinoHead(c.Value) {
		return failWith[HeadPlay](v.rule(s, userID, fail(CodeInvalidDinoHead, "card is not a dino head")))
	}
	return passWith(HeadPlay{Player: p.Value, Card: c.Value})
}

// ValidateAttach runs the AttachBodyPartToDino checks in order.
func (v *GameValidationService) ValidateAttach(s *domain.GameSession, userID string, cardID, headCardID int) Validated[PartAttach] {
	p := v.seated(s, userID)
	if !p.OK {
		return failWith[PartAttach](p.ValidationResult)
	}
	if !domain.CanPlayCard(s, userID) {
		return failWith[PartAttach](v.rule(s, userID, fail(CodeAlreadyPlayedTwoCards, "card limit reached")))
	}
	c := v.CardInHand(s, p.Value, cardID)
	if !c.OK {
		return failWith[PartAttach](c.ValidationResult)
	}
	if !domain.IsValidBodyPart(c.Value) {
		return failWith[PartAttach](v.rule(s, userID, fail(CodeInvalidCardType, "card is not a body part")))
	}
	d := v.DinoExists(s, p.Value, headCardID)
	if !d.OK {
		return failWith[PartAttach](d.ValidationResult)
	}
	if r := v.Attachable(s, userID, d.Value, c.Value); !r.OK {
		return failWith[PartAttach](r)
	}
	return passWith(PartAttach{Player: p.Value, Card: c.Value, Dino: d.Value})
}

// ValidateProvoke runs the ProvokeArchArmy checks in order.
func (v *GameValidationService) ValidateProvoke(s *domain.GameSession, userID, rawArmy string) Validated[Provocation] {
	p := v.seated(s, userID)
	if !p.OK {
		return failWith[Provocation](p.ValidationResult)
	}
	if !domain.CanProvoke(s, userID) {
		return failWith[Provocation](v.rule(s, userID, fail(CodeAlreadyTookAction, "main action already taken")))
	}
	army := v.Army(s, userID, rawArmy)
	if !army.OK {
		return failWith[Provocation](army.ValidationResult)
	}
	if r := v.ArmyHasArchs(s, userID, army.Value); !r.OK {
		return failWith[Provocation](r)
	}
	return passWith(Provocation{Player: p.Value, Army: army.Value})
}

// ValidateEndTurn runs the EndTurn checks in order.
func (v *GameValidationService) ValidateEndTurn(s *domain.GameSession, userID string) Validated[*domain.Player] {
	p := v.seated(s, userID)
	if !p.OK {
		return p
	}
	if !domain.CanEndTurn(s, userID) {
		return failWith[*domain.Player](v.rule(s, userID, fail(CodeNotYourTurn, "cannot end turn")))
	}
	return p
}
