// Package log is the levelled diagnostic logger of the drills CLI. Records go
// to stderr so that stdout carries program results only.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is a logging level name as accepted on the command line.
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

var (
	logger  *slog.Logger
	current slog.Level
	output  io.Writer = os.Stderr
)

func init() {
	_ = SetLevel(LevelWarn)
}

// ParseLevel converts s to a Level.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	switch level {
	case LevelError, LevelWarn, LevelInfo, LevelDebug:
		return level, nil
	default:
		return "", fmt.Errorf("invalid log level: %s", s)
	}
}

// SetLevel configures the logging level.
func SetLevel(level Level) error {
	switch level {
	case LevelError:
		current = slog.LevelError
	case LevelWarn:
		current = slog.LevelWarn
	case LevelInfo:
		current = slog.LevelInfo
	case LevelDebug:
		current = slog.LevelDebug
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}
	setup()
	return nil
}

// SetOutput redirects log records to w.
func SetOutput(w io.Writer) {
	output = w
	setup()
}

func setup() {
	logger = slog.New(NewHandler(output, current))
}

// Logger returns the current logger for injection into services.
func Logger() *slog.Logger { return logger }

// Error logs an error message
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// Warn logs a warning message
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Info logs an info message
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Debug logs a debug message
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }
