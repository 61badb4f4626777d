package logging

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps LOG_LEVEL values onto slog levels, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStdoutHandler returns the JSON handler every deployment logs through.
func NewStdoutHandler(level slog.Level) slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}

// Setup initializes the global slog logger with JSON output to stdout.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(NewStdoutHandler(level)))
}
