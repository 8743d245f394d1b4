package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide structured logger. It is usable before Init so
// tests and scripts that never call Init still get sane output.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init reconfigures the logger with the level from configuration.
// Unrecognized level names fall back to info.
func Init(level string) {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
