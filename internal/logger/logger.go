package logger

import (
	"log/slog"
	"os"
)

// New builds the process-wide JSON logger. Info is the floor so debug
// noise stays out of production output.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
