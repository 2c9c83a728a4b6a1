package domain

// The predicates below only read session state; they never mutate it.

func isTurnOf(s *GameSession, userID string) bool {
	return s != nil && userID != "" && s.CurrentTurn == userID
}

// CanDrawCard reports whether userID may draw: their turn, the game is
// running and nothing was drawn yet this turn.
func CanDrawCard(s *GameSession, userID string) bool {
	return isTurnOf(s, userID) && s.IsStarted() && !s.HasDrawnThisTurn
}

// CanPlayCard reports whether userID may play a head or body part this turn.
func CanPlayCard(s *GameSession, userID string) bool {
	return isTurnOf(s, userID) && s.CardsPlayedThisTurn < s.MaxCardsPerTurn
}

// CanProvoke reports whether userID may still take the turn's main action.
func CanProvoke(s *GameSession, userID string) bool {
	return isTurnOf(s, userID) && !s.MainActionTaken
}

// CanEndTurn reports whether userID may end the turn. A turn may be ended
// without taking any action.
func CanEndTurn(s *GameSession, userID string) bool {
	return isTurnOf(s, userID) && s.IsStarted()
}

// IsValidDinoHead reports whether card can start a dino.
func IsValidDinoHead(card Card) bool {
	return card.Category == CategoryDinoHead && card.Army.Valid()
}

// IsValidBodyPart reports whether card can be attached to a dino.
func IsValidBodyPart(card Card) bool {
	return card.Category == CategoryBodyPart && card.Part != PartNone && card.Army.Valid()
}
