package configs

import (
	"log/slog"
	"strings"
)

// Logger defines configuration options for the structured logger. The
// Level controls the minimum level emitted by the logger. Valid values
// include "debug", "info", "warn" and "error". Format determines the
// output encoding and may be "text" (default) or "json". An unknown
// format falls back to "text".
//
// Every run writes to its own file in Dir. Files older than RetentionDays
// are purged after the run. Console additionally copies records to stdout.
type Logger struct {
	Level         string `env:"LEVEL" envDefault:"info"`
	Format        string `env:"FORMAT" envDefault:"text"`
	Dir           string `env:"DIR" envDefault:"./logs"`
	RetentionDays int    `env:"RETENTION_DAYS" envDefault:"30"`
	Console       bool   `env:"CONSOLE" envDefault:"false"`
}

// SlogLevel converts the textual level into a slog.Level. Unknown levels
// default to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat validates and normalises the requested log format. Supported
// formats are "text" and "json". Any other value returns "text".
func (c Logger) SlogFormat() string {
	switch strings.ToLower(c.Format) {
	case "json":
		return "json"
	default:
		return "text"
	}
}
