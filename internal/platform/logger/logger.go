package logger

import (
	"io"
	"log/slog"

	"egid/internal/platform/config"
)

// New returns a structured logger writing to w in the configured format.
func New(w io.Writer, cfg config.Server) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == config.LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
