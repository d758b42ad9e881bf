package utils

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const timeFormat = "2006-01-02 15:04:05"

// Logger provides leveled logging throughout the application. Info, warn and
// debug lines go to stdout; errors go to stderr.
type Logger struct {
	out *log.Logger
	err *log.Logger
}

// NewLogger creates a new Logger writing to stdout/stderr at the given level.
// An unknown level falls back to info.
func NewLogger(level string) *Logger {
	return newLogger(os.Stdout, os.Stderr, level)
}

// NewDiscardLogger returns a Logger that drops everything. Used by tests.
func NewDiscardLogger() *Logger {
	return newLogger(io.Discard, io.Discard, "error")
}

func newLogger(out, errOut io.Writer, level string) *Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           lvl,
	}
	return &Logger{
		out: log.NewWithOptions(out, opts),
		err: log.NewWithOptions(errOut, opts),
	}
}

func (l *Logger) Info(format string, args ...any) {
	l.out.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.out.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.out.Debugf(format, args...)
}
