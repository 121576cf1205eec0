// internal/config/config.go
//
// Process configuration loaded from the environment.
// Responsibilities:
//   - Parse LOG_LEVEL and LOG_FORMAT (with defaults) into Config.
//   - Reject unknown log formats.
//
// Only diagnostic settings live here; the game rules are fixed.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Log output formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds runtime settings.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"auto"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.LogFormat {
	case FormatAuto, FormatConsole, FormatJSON:
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}
	return cfg, nil
}
