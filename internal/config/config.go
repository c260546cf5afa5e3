// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config captures everything the service reads from the environment.
type Config struct {
	// Store selects the persistence backend: memory, redis, or postgres.
	Store string `env:"CAIDA_STORE" envDefault:"memory"`

	RedisAddr     string `env:"CAIDA_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"CAIDA_REDIS_PASSWORD"`
	PostgresDSN   string `env:"CAIDA_POSTGRES_DSN"`

	LogLevel  string `env:"CAIDA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CAIDA_LOG_FORMAT" envDefault:"text"`

	// TargetScore overrides the score a player must reach to win.
	TargetScore int `env:"CAIDA_TARGET_SCORE" envDefault:"24"`

	BotDelay   time.Duration `env:"CAIDA_BOT_DELAY" envDefault:"1200ms"`
	RoundPause time.Duration `env:"CAIDA_ROUND_PAUSE" envDefault:"2s"`
}

// Load reads a .env file when present, then parses the environment.
func Load() (Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("unknown store backend %q", c.Store)
	}
	if c.Store == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("CAIDA_POSTGRES_DSN is required with the postgres store")
	}
	if c.TargetScore <= 0 {
		return fmt.Errorf("target score must be positive, got %d", c.TargetScore)
	}
	return nil
}
