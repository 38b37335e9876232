// Package logger sets up log/slog for framehost: one JSON object per line,
// with the file and line of the call site attached to every entry.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds a JSON logger writing to w at the given level.
// Tests pass a buffer here and decode the entries.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	return slog.New(handler)
}

// Setup installs a stdout logger as the slog default and returns it.
// Source locations are kept on so a log line points back at the code
// that emitted it without grepping for the message.
func Setup(level slog.Level) *slog.Logger {
	logger := New(os.Stdout, level)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps the --log-level value to a slog.Level. Case and
// surrounding spaces are ignored; anything unknown means info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
