package logger

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx/fxevent"

	"github.com/projectkrs/krs/internal/config"
)

// New creates a preconfigured slog.Logger honouring the configured level.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg.LogLevel)
}

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// FxLogger routes fx lifecycle events through the application logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
}
