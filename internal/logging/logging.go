// Package logging builds the slog logger shared by the skillkit tools.
package logging

import (
	"io"
	"log/slog"
	"math"
	"strings"
)

const EnvLogLevel = "SKILLKIT_LOG_LEVEL"

// LevelOff silences every record
const LevelOff = slog.Level(math.MaxInt32)

// DefaultLevel keeps stderr quiet unless something goes wrong
const DefaultLevel = slog.LevelWarn

// New returns a text logger writing to w at the given level
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return New(io.Discard, LevelOff)
}

// ParseLevel maps an environment value to a level; ok is false when raw is
// empty or unrecognised.
func ParseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "trace":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "off", "none", "disabled":
		return LevelOff, true
	default:
		return DefaultLevel, false
	}
}
