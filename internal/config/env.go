package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig configures the standalone websocket server.
type ServerConfig struct {
	Addr            string        `env:"ARCHSDINOS_ADDR" envDefault:":8080"`
	JWTSecret       string        `env:"ARCHSDINOS_JWT_SECRET"`
	GameConfigPath  string        `env:"ARCHSDINOS_GAME_CONFIG" envDefault:"data/game_config.json"`
	DatabasePath    string        `env:"ARCHSDINOS_DB" envDefault:"archsdinos.db"`
	LogLevel        string        `env:"ARCHSDINOS_LOG_LEVEL" envDefault:"info"`
	LogFile         string        `env:"ARCHSDINOS_LOG_FILE"`
	PlayersPerMatch int           `env:"ARCHSDINOS_PLAYERS_PER_MATCH" envDefault:"2"`
	SweepInterval   time.Duration `env:"ARCHSDINOS_SWEEP_INTERVAL" envDefault:"5s"`
	ReconnectGrace  time.Duration `env:"ARCHSDINOS_RECONNECT_GRACE" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"ARCHSDINOS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadServerConfig reads ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		return ServerConfig{}, fmt.Errorf("parse env: ARCHSDINOS_JWT_SECRET is required")
	}
	if cfg.PlayersPerMatch < 2 {
		return ServerConfig{}, fmt.Errorf("parse env: ARCHSDINOS_PLAYERS_PER_MATCH must be at least 2")
	}
	return cfg, nil
}
