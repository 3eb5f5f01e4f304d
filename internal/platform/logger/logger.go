package logger

import (
	"io"
	"log/slog"
)

// New returns a JSON slog logger writing to w at the given level.
// Commands log to stderr so stdout stays free for data.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
