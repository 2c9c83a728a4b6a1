package bot

import (
	"fmt"
	"strings"
)

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelCautious BotLevel = iota
	BotLevelGreedy
)

// ParseBotLevel maps an identity difficulty to a level. Unknown values play greedy.
func ParseBotLevel(difficulty string) BotLevel {
	switch strings.ToLower(difficulty) {
	case "easy", "cautious":
		return BotLevelCautious
	default:
		return BotLevelGreedy
	}
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelCautious:
		return &CautiousBot{}, nil
	case BotLevelGreedy:
		return &GreedyBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// NewAgent builds the agent for a bot user id, using its identity's
// difficulty when one is loaded.
func NewAgent(userID string) (*Agent, error) {
	level := BotLevelGreedy
	name := userID
	if identity, ok := GetBotConfig(userID); ok {
		level = ParseBotLevel(identity.Difficulty)
		if identity.DisplayName != "" {
			name = identity.DisplayName
		}
	}
	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: userID, Name: name, Strategy: brain}, nil
}
