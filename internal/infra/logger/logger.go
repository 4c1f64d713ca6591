package logger

import (
	"io"
	"log/slog"
)

// New — JSON-логгер; в dev пишет и debug.
func New(env string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", "materials-catalog")
}
