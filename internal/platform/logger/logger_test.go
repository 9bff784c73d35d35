// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/fitcore/internal/config"
	"github.com/phrazzld/fitcore/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetup is a basic test that ensures the Setup function works without errors
func TestSetup(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	var buf bytes.Buffer
	log, err := logger.Setup(&buf, config.LogConfig{Level: "info"})

	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Same(t, log, slog.Default(), "Setup should install the logger as the default")

	slog.Info("via default")
	assert.Contains(t, buf.String(), `"msg":"via default"`)
}

// TestParseLevel tests that valid log levels are parsed case-insensitively
// and that unknown levels fall back to info.
func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		logLevel string
		want     slog.Level
		ok       bool
	}{
		{name: "debug level", logLevel: "debug", want: slog.LevelDebug, ok: true},
		{name: "info level", logLevel: "info", want: slog.LevelInfo, ok: true},
		{name: "warn level", logLevel: "warn", want: slog.LevelWarn, ok: true},
		{name: "error level", logLevel: "error", want: slog.LevelError, ok: true},
		{name: "case insensitive - DEBUG", logLevel: "DEBUG", want: slog.LevelDebug, ok: true},
		{name: "case insensitive - Info", logLevel: "Info", want: slog.LevelInfo, ok: true},
		{name: "invalid level", logLevel: "verbose", want: slog.LevelInfo, ok: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := logger.ParseLevel(tc.logLevel)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

// TestNewFiltersByLevel verifies the JSON output and level filtering.
func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(&buf, config.LogConfig{Level: "warn"})

	log.Info("info test message")
	log.Warn("warn test message", "kind", "set")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "At warn level, info messages should be filtered out")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "warn test message", entry["msg"])
	assert.Equal(t, "set", entry["kind"])
}

// TestNewInvalidLevelWarnsOnWriter verifies the fallback warning goes to the
// logger's own writer.
func TestNewInvalidLevelWarnsOnWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(&buf, config.LogConfig{Level: "verbose"})
	log.Debug("filtered at the default level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "invalid log level configured, using default level", entry["msg"])
	assert.Equal(t, "verbose", entry["configured_level"])
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	handler := logger.NewTestHandler()
	log := slog.New(handler).With("run_id", "abc")

	ctx := logger.WithLogger(context.Background(), log)
	logger.FromContext(ctx).Info("from context")

	entries := handler.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "from context", entries[0]["message"])
	assert.Equal(t, "abc", entries[0]["run_id"])

	assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))

	handler.Clear()
	assert.Empty(t, handler.Entries())
}
