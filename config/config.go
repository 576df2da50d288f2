// Package config loads runtime settings from the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the Meseriasii backend.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:":3000"`
	// DataDir is the directory holding the bbolt database file.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`
	// JWTSecret signs and verifies session tokens (HS256). The server
	// refuses to start without it: tokens issued without a secret would
	// be forgeable.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	// TokenTTL is the validity window of an issued token.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

// Load reads configuration from the environment, overlaying an optional
// .env file first. A missing or empty JWT_SECRET is a fatal condition.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
