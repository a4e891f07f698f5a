// Package logger builds the application's slog.Logger and provides nil-safe
// attribute helpers so call sites can write log.Info("msg", logger.Error(err))
// without explicit nil checks.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a text-handler logger writing to stdout at the given level.
// Unknown level strings fall back to info.
func New(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
