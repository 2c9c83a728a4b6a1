package app

import "time"

// MinPlayersToStartGame defines the minimum number of occupied seats required to start a game.
// Keep this centralized so tests or local runs can adjust the rule without touching multiple call sites.
const MinPlayersToStartGame = 2

const (
	// MaxPlayersPerMatch is the seat count of a table.
	MaxPlayersPerMatch = 4
	// DefaultHandSize is the number of cards dealt to each player.
	DefaultHandSize = 5
	// DefaultNotifyTimeout bounds a single callback delivery.
	DefaultNotifyTimeout = 2 * time.Second
	// DefaultRecordTimeout bounds the end-of-game statistics write.
	DefaultRecordTimeout = 5 * time.Second
)
