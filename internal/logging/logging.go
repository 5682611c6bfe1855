// Package logging builds the application's slog logger.
package logging

import (
	"io"
	"log/slog"
)

// New creates a logger writing to w in "json" or "text" format at the
// given level, and installs it as the slog default.
func New(w io.Writer, level, format string) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel converts string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
