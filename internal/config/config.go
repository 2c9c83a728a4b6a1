package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"archsdinos/internal/app"
)

// GameConfig holds the tunable table rules and bot pacing.
type GameConfig struct {
	MovesPerTurn         int `json:"moves_per_turn"`
	MaxCardsPerTurn      int `json:"max_cards_per_turn"`
	HandSize             int `json:"hand_size"`
	MinPlayers           int `json:"min_players"`
	MaxPlayers           int `json:"max_players"`
	MatchDurationSeconds int `json:"match_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotMoveDelayMillis is the pause before a bot acts on its turn.
	BotMoveDelayMillis int `json:"bot_move_delay_ms"`
}

// Default returns the standard configuration.
func Default() *GameConfig {
	r := app.DefaultRules()
	return &GameConfig{
		MovesPerTurn:            r.MovesPerTurn,
		MaxCardsPerTurn:         r.MaxCardsPerTurn,
		HandSize:                r.HandSize,
		MinPlayers:              r.MinPlayers,
		MaxPlayers:              r.MaxPlayers,
		MatchDurationSeconds:    int(r.MatchDuration / time.Second),
		BotAutoFillDelaySeconds: 10,
		BotMoveDelayMillis:      1500,
	}
}

// LoadGameConfig reads the configuration at path. Fields absent from the
// file keep their defaults.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects configurations no table could be played with.
func (c *GameConfig) Validate() error {
	switch {
	case c.MinPlayers < 2:
		return fmt.Errorf("invalid game config: min_players %d is below 2", c.MinPlayers)
	case c.MaxPlayers < c.MinPlayers:
		return fmt.Errorf("invalid game config: max_players %d is below min_players %d", c.MaxPlayers, c.MinPlayers)
	case c.MovesPerTurn < 1 || c.MaxCardsPerTurn < 1 || c.HandSize < 1:
		return fmt.Errorf("invalid game config: turn limits must be positive")
	case c.MatchDurationSeconds < 1:
		return fmt.Errorf("invalid game config: match_duration_seconds must be positive")
	}
	return nil
}

// Rules converts the configuration to match rules.
func (c *GameConfig) Rules() app.Rules {
	return app.Rules{
		MovesPerTurn:    c.MovesPerTurn,
		MaxCardsPerTurn: c.MaxCardsPerTurn,
		HandSize:        c.HandSize,
		MinPlayers:      c.MinPlayers,
		MaxPlayers:      c.MaxPlayers,
		MatchDuration:   time.Duration(c.MatchDurationSeconds) * time.Second,
	}
}

func (c *GameConfig) BotFillDelay() time.Duration {
	return time.Duration(c.BotAutoFillDelaySeconds) * time.Second
}

func (c *GameConfig) BotMoveDelay() time.Duration {
	return time.Duration(c.BotMoveDelayMillis) * time.Millisecond
}
