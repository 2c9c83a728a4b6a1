package app

import "fmt"

// Code is the result of a player action as seen by the client.
type Code int

const (
	CodeSuccess Code = iota
	CodeGameEnded
	CodeGameNotStarted
	CodeNotYourTurn
	CodeAlreadyDrewThisTurn
	CodeInvalidDrawPile
	CodeDrawPileEmpty
	CodeAlreadyPlayedTwoCards
	CodeCardNotInHand
	CodeInvalidDinoHead
	CodeMustAttachToHead
	CodeInvalidCardType
	CodeArmyTypeMismatch
	CodeAlreadyTookAction
	CodeInvalidArmyType
	CodeNoArchsInArmy
	CodeUnexpectedError
	CodeDatabaseError
)

var codeNames = map[Code]string{
	CodeSuccess:               "success",
	CodeGameEnded:             "game_ended",
	CodeGameNotStarted:        "game_not_started",
	CodeNotYourTurn:           "not_your_turn",
	CodeAlreadyDrewThisTurn:   "already_drew_this_turn",
	CodeInvalidDrawPile:       "invalid_draw_pile",
	CodeDrawPileEmpty:         "draw_pile_empty",
	CodeAlreadyPlayedTwoCards: "already_played_two_cards",
	CodeCardNotInHand:         "card_not_in_hand",
	CodeInvalidDinoHead:       "invalid_dino_head",
	CodeMustAttachToHead:      "must_attach_to_head",
	CodeInvalidCardType:       "invalid_card_type",
	CodeArmyTypeMismatch:      "army_type_mismatch",
	CodeAlreadyTookAction:     "already_took_action",
	CodeInvalidArmyType:       "invalid_army_type",
	CodeNoArchsInArmy:         "no_archs_in_army",
	CodeUnexpectedError:       "unexpected_error",
	CodeDatabaseError:         "database_error",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the code by name so transports never see the ordinal.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a code name.
func (c *Code) UnmarshalText(text []byte) error {
	for code, name := range codeNames {
		if name == string(text) {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("unknown code %q", text)
}

// CodeSet is the set of codes an action may return.
type CodeSet map[Code]struct{}

func newCodeSet(codes ...Code) CodeSet {
	set := make(CodeSet, len(codes)+3)
	for _, c := range append(codes, CodeSuccess, CodeUnexpectedError, CodeDatabaseError) {
		set[c] = struct{}{}
	}
	return set
}

// Contains reports whether c belongs to the set.
func (s CodeSet) Contains(c Code) bool {
	_, ok := s[c]
	return ok
}

// Codes each action can return. Every set includes Success, UnexpectedError
// and DatabaseError.
var (
	DrawCodes = newCodeSet(CodeGameEnded, CodeGameNotStarted, CodeNotYourTurn,
		CodeAlreadyDrewThisTurn, CodeInvalidDrawPile, CodeDrawPileEmpty)
	PlayHeadCodes = newCodeSet(CodeGameEnded, CodeGameNotStarted, CodeNotYourTurn,
		CodeAlreadyPlayedTwoCards, CodeCardNotInHand, CodeInvalidDinoHead)
	AttachCodes = newCodeSet(CodeGameEnded, CodeGameNotStarted, CodeNotYourTurn,
		CodeAlreadyPlayedTwoCards, CodeCardNotInHand, CodeMustAttachToHead,
		CodeInvalidCardType, CodeArmyTypeMismatch)
	ProvokeCodes = newCodeSet(CodeGameEnded, CodeGameNotStarted, CodeNotYourTurn,
		CodeAlreadyTookAction, CodeInvalidArmyType, CodeNoArchsInArmy)
	EndTurnCodes = newCodeSet(CodeGameEnded, CodeGameNotStarted, CodeNotYourTurn)
)
