package internal

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Output io.Writer
}

// Validate validates the logging configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.In("", "debug", "info", "warn", "error").
			Error("must be one of debug, info, warn, error")),
		validation.Field(&c.Output, validation.Required),
	)
}

// ParseLogLevel maps a level name to its slog.Level. Empty means info.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// NewLogger builds the structured JSON logger used by every command.
func NewLogger(cfg LogConfig) (*slog.Logger, error) {
	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("log config: %w", err)
	}
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{Level: level})), nil
}
