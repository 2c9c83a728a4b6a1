package domain

import "time"

const (
	// DrawPileCount is the number of draw piles on the table.
	DrawPileCount = 3

	// DefaultMovesPerTurn is the per-turn move budget.
	DefaultMovesPerTurn = 3
	// DefaultMaxCardsPerTurn caps heads and body parts played in one turn.
	DefaultMaxCardsPerTurn = 2
	// MinConnectedPlayers is the smallest table a match can continue with.
	MinConnectedPlayers = 2

	// DefaultMatchDuration is the time limit of a match.
	DefaultMatchDuration = 20 * time.Minute
)
