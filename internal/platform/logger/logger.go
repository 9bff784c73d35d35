// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/fitcore/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
//
// Logs are written to w, normally stderr since stdout carries the program's output.
func Setup(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	logger := New(w, cfg)

	// Set this logger as the default for the application
	// This allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}

// New creates a JSON logger writing to w at the configured level. An unknown
// level falls back to info and the fallback is logged to w.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level, ok := ParseLevel(cfg.Level)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}
	return logger
}

// ParseLevel maps a level name (case-insensitive) to its slog level. Unknown
// names yield slog.LevelInfo and false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
