package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the process-wide slog logger. Level is one of debug,
// info, warn or error; Format is text or json. Unknown values fall back to
// info and text.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
	// Service is attached to every record so server, worker and CLI logs
	// can share one sink.
	Service string `env:"SERVICE" envDefault:"adpulse"`
}

func (c Logger) SlogLevel() slog.Level {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error", "err":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return level
}

func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}
