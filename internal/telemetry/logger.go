package telemetry

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide structured logger from a level name
// ("debug", "info", "warn", "error"), writing JSON records to stdout so a
// container runtime's log collector can parse them without a sidecar.
// Unknown level names fall back to info rather than erroring, since a
// malformed log level shouldn't prevent the process from starting.
func NewLogger(level string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch level {
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
