package slogutil

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, slog.LevelDebug)
	logger.Info("Generated entities", "classes", 3, "path", "out/entities.go")

	line := buf.String()
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`, line)
	assert.Contains(t, line, "[info] Generated entities | classes=3 path=out/entities.go\n")
}

func TestHandler_NoAttrs(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&buf, slog.LevelDebug).Warn("Short on inputs")

	line := buf.String()
	assert.Contains(t, line, "[warn] Short on inputs\n")
	assert.NotContains(t, line, "|")
}

func TestHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, slog.LevelWarn)
	logger.Info("dropped")
	logger.Debug("dropped")
	logger.Warn("kept")

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "kept")
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, slog.LevelDebug)
	logger.With("run", "batch").WithGroup("gen").Info("Wrote file", "name", "entities.go")

	assert.Contains(t, buf.String(), "| run=batch gen.name=entities.go")
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	logger.Error("never seen")

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromString(tt.input))
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelFromVerbosity(0, false))
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(1, false))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(2, false))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(7, false))
	assert.Equal(t, suppressAll, LevelFromVerbosity(0, true))
}
