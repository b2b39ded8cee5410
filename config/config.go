// Package config resolves runtime settings from explicit values, the
// XML2EXCEL_* environment, and built-in defaults, in that precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by the CLI modes.
type Config struct {
	WatchDir    string
	OutputDir   string
	Extension   string
	SettleDelay time.Duration
	DatabaseDSN string
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Extension:   ".xml",
		SettleDelay: 2 * time.Second,
	}
}

// Load fills the zero fields of cfg from the environment and then from
// Defaults. A .env file in the working directory is honored when present.
func Load(cfg Config) (Config, error) {
	_ = godotenv.Load()

	env := Config{
		WatchDir:    os.Getenv("XML2EXCEL_WATCH_DIR"),
		OutputDir:   os.Getenv("XML2EXCEL_OUTPUT_DIR"),
		Extension:   os.Getenv("XML2EXCEL_EXTENSION"),
		DatabaseDSN: os.Getenv("XML2EXCEL_DATABASE_DSN"),
	}
	if v := os.Getenv("XML2EXCEL_SETTLE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("XML2EXCEL_SETTLE_DELAY: %w", err)
		}
		env.SettleDelay = d
	}

	if err := mergo.Merge(&cfg, env); err != nil {
		return cfg, err
	}
	if err := mergo.Merge(&cfg, Defaults()); err != nil {
		return cfg, err
	}
	return cfg, nil
}
