package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelSilent disables all output.
const LevelSilent = "silent"

// New returns a logger writing to w at the given level and format.
// Unknown levels fall back to info and unknown formats to text.
func New(level, format string, w io.Writer) *slog.Logger {
	if IsSilent(level) {
		return slog.New(slog.DiscardHandler)
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		slog.String("heading", "fig"),
	})
	return slog.New(handler)
}

// IsSilent reports whether level turns logging off.
func IsSilent(level string) bool {
	return strings.EqualFold(level, LevelSilent)
}

// ValidLevel reports whether level is one New understands.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error", LevelSilent:
		return true
	}
	return false
}

// parseLevel converts a string log level to slog.Level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
