// Package config loads process configuration from the environment, merging
// in a .env file when one exists.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken     string `env:"DISCORD_TOKEN,notEmpty"`
	CommandPrefix    string `env:"COMMAND_PREFIX" envDefault:"!"`
	StoragePath      string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	ConfessChannelID string `env:"CONFESS_CHANNEL_ID"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile          string `env:"LOG_FILE"`
}

// New reads the configuration. A missing .env file is fine; the system
// environment is the source of truth then.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
