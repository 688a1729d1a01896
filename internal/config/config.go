package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the calculator command.
type Config struct {
	// Prompt is printed before each line is read interactively.
	Prompt string `env:"CALC_PROMPT" envDefault:"Type an expression to evaluate or 'exit' to exit"`

	// HistoryDB is the path of the history journal. Empty disables it.
	HistoryDB string `env:"CALC_HISTORY_DB" envDefault:""`

	// LogLevel is the minimum level of log messages.
	LogLevel string `env:"CALC_LOG_LEVEL" envDefault:"warn"`

	// Format is the format of history listings.
	Format string `env:"CALC_FORMAT" envDefault:"text"`
}

// ValidFormats are the allowed history listing formats.
var ValidFormats = []string{"text", "yaml"}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("CALC_LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if !isValidFormat(c.Format) {
		return fmt.Errorf("CALC_FORMAT must be one of: %v", ValidFormats)
	}

	return nil
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{HistoryDB=%q, LogLevel=%s, Format=%s}", c.HistoryDB, c.LogLevel, c.Format)
}
