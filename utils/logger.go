package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Logger wraps slog with printf-style level methods
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a colored console logger at the given level name
func NewLogger(level string) *Logger {
	return newLogger(os.Stdout, ParseLevel(level), false)
}

// NewLoggerWithWriter creates an uncolored logger writing to w, used in tests
func NewLoggerWithWriter(w io.Writer, level string) *Logger {
	return newLogger(w, ParseLevel(level), true)
}

func newLogger(w io.Writer, level slog.Level, noColor bool) *Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})
	return &Logger{log: slog.New(handler)}
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
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

func (l *Logger) logf(level slog.Level, msg string, args ...interface{}) {
	if !l.log.Enabled(context.Background(), level) {
		return
	}
	l.log.Log(context.Background(), level, fmt.Sprintf(msg, args...))
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.logf(slog.LevelInfo, msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.logf(slog.LevelWarn, msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.logf(slog.LevelError, msg, args...)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.logf(slog.LevelDebug, msg, args...)
}

// Truncate shortens s to max runes, marking the cut with "..."
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
