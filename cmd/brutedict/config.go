package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// appConfig carries the environment-driven settings of the CLI. Everything
// the user decides per run is collected interactively or from a profile;
// everything operational lives here.
type appConfig struct {
	// OutputPath is the default wordlist destination.
	OutputPath string `env:"BRUTEDICT_OUTPUT" envDefault:"output.txt"`
	// Threshold gates the confirmation prompt for very large runs.
	Threshold int `env:"BRUTEDICT_THRESHOLD" envDefault:"2000000"`

	LogLevel  slog.Level `env:"BRUTEDICT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string     `env:"BRUTEDICT_LOG_FORMAT" envDefault:"text"`
}

func loadConfig() (appConfig, error) {
	// The .env file is optional; absence is not an error.
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		return appConfig{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger. It writes to stderr so stdout
// stays clean for prompts and piped output.
func newLogger(cfg appConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
