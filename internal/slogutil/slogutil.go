// Package slogutil configures the tool's structured logging: a compact
// line handler plus the level helpers the CLI flags map onto.
package slogutil

import (
	"io"
	"log/slog"
	"strings"
)

// suppressAll sits above every standard level; a logger at this level
// emits nothing.
const suppressAll = slog.Level(100)

// NewLogger creates a logger writing compact lines to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscardLogger creates a logger that drops everything. Used by library
// code when the caller passes no logger, and by tests.
func NewDiscardLogger() *slog.Logger {
	return slog.New(NewHandler(io.Discard, &slog.HandlerOptions{Level: suppressAll}))
}

// LevelFromString converts a level name to a slog.Level. Matching is
// case-insensitive; unrecognized names fall back to info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromVerbosity maps the CLI verbosity flags to a slog.Level: the
// default is warn, -v raises to info, -vv and beyond to debug, and --quiet
// suppresses everything.
func LevelFromVerbosity(verbosity int, quiet bool) slog.Level {
	if quiet {
		return suppressAll
	}

	switch verbosity {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
