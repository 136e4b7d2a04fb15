// Package logger holds the process-wide diagnostic logger. Diagnostics go to
// stderr as slog text records; user-facing progress output lives in package
// console.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// ParseLevel maps a config value ("debug", "info", "warn", "error") to a slog
// level. Unknown values fall back to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Init replaces the default logger with a text handler writing to w at level.
func Init(w io.Writer, level string) {
	if w == nil {
		w = os.Stderr
	}
	defaultLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// SetLogger replaces the default logger instance.
func SetLogger(l *slog.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs an informational message.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }
