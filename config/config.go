package config

import (
	"fmt"
	"time"

	"github.com/Ashenafi-pixel/crash-round-engine/games/crash"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HouseEdgeFactor float64       `env:"CRASH_HOUSE_EDGE_FACTOR" envDefault:"0.99"`
	TickStep        float64       `env:"CRASH_TICK_STEP" envDefault:"0.01"`
	TickInterval    time.Duration `env:"CRASH_TICK_INTERVAL" envDefault:"100ms"`
	StartingBalance float64       `env:"CRASH_STARTING_BALANCE" envDefault:"1000"`
	HistorySize     int           `env:"CRASH_HISTORY_SIZE" envDefault:"10"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"` // "console" or "json"
}

// Load reads the config from environment variables, falling back to defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Game().Validate(); err != nil {
		return nil, err
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("CRASH_TICK_INTERVAL must be positive, got %s", cfg.TickInterval)
	}
	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf("CRASH_STARTING_BALANCE must not be negative, got %v", cfg.StartingBalance)
	}
	return &cfg, nil
}

// Game returns the engine tunables.
func (c *Config) Game() crash.Config {
	return crash.Config{HouseEdgeFactor: c.HouseEdgeFactor, TickStep: c.TickStep}
}
