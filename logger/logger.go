package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Info(msg string, keyvals ...interface{})

	Warn(msg string, keyvals ...interface{})

	Error(msg string, keyvals ...interface{})

	Debug(msg string, keyvals ...interface{})
}

func New() Logger {
	return NewWithWriter(os.Stderr, slog.LevelDebug)
}

// NewWithWriter builds the JSON logger on top of w. The terminal backend uses
// it to keep log lines off the screen it draws on.
func NewWithWriter(w io.Writer, level slog.Level) Logger {
	opts := &slog.HandlerOptions{
		Level:     level, // minimum log level
		AddSource: true,  // include file + line number
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

// Discard drops everything, for tests
func Discard() Logger {
	return NewWithWriter(io.Discard, slog.LevelError)
}

// ParseLevel maps a config value onto a slog level, defaulting to debug
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
