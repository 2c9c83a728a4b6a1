package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game_config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadGameConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(writeConfig(t, `{"moves_per_turn": 4, "match_duration_seconds": 600}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rules := cfg.Rules()
	if rules.MovesPerTurn != 4 || rules.MatchDuration != 10*time.Minute {
		t.Fatalf("rules = %+v", rules)
	}
	if rules.HandSize != 5 || rules.MaxCardsPerTurn != 2 || rules.MaxPlayers != 4 {
		t.Fatalf("defaults lost: %+v", rules)
	}
	if cfg.BotFillDelay() != 10*time.Second || cfg.BotMoveDelay() != 1500*time.Millisecond {
		t.Fatalf("bot delays = %s %s", cfg.BotFillDelay(), cfg.BotMoveDelay())
	}
}

func TestLoadGameConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad json", `{`, "unmarshal"},
		{"one player", `{"min_players": 1}`, "min_players"},
		{"max below min", `{"min_players": 3, "max_players": 2}`, "max_players"},
		{"zero duration", `{"match_duration_seconds": 0}`, "match_duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGameConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}

	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

func TestRepositoryGameConfigLoads(t *testing.T) {
	if _, err := LoadGameConfig(filepath.Join("..", "..", "data", "game_config.json")); err != nil {
		t.Fatalf("shipped config: %v", err)
	}
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("ARCHSDINOS_JWT_SECRET", "s3cret")
	t.Setenv("ARCHSDINOS_SWEEP_INTERVAL", "2s")

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.SweepInterval != 2*time.Second || cfg.PlayersPerMatch != 2 || cfg.ReconnectGrace != 15*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}

	t.Setenv("ARCHSDINOS_PLAYERS_PER_MATCH", "many")
	if _, err := LoadServerConfig(); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadServerConfigRequiresSecret(t *testing.T) {
	t.Setenv("ARCHSDINOS_JWT_SECRET", "")
	if _, err := LoadServerConfig(); err == nil {
		t.Fatalf("empty secret accepted")
	}
}
