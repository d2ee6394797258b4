// Package logging implements ports.Logger: a console logger with text and
// JSON output, and a no-op logger for hosts that own the terminal.
package logging

import (
	"context"

	"github.com/felixgeelhaar/lectern/internal/ports"
)

// NopLogger discards every entry.
type NopLogger struct {
	level ports.Level
}

// NewNopLogger creates a NopLogger.
func NewNopLogger() *NopLogger {
	return &NopLogger{level: ports.LevelInfo}
}

func (l *NopLogger) Debug(context.Context, string, ...ports.Field) {}
func (l *NopLogger) Info(context.Context, string, ...ports.Field)  {}
func (l *NopLogger) Warn(context.Context, string, ...ports.Field)  {}
func (l *NopLogger) Error(context.Context, string, ...ports.Field) {}

// With returns l.
func (l *NopLogger) With(...ports.Field) ports.Logger { return l }

// Level returns the configured level.
func (l *NopLogger) Level() ports.Level { return l.level }

// SetLevel records level.
func (l *NopLogger) SetLevel(level ports.Level) { l.level = level }

// FromContext returns the logger in ctx, or a NopLogger.
func FromContext(ctx context.Context) ports.Logger {
	if logger := ports.LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return NewNopLogger()
}

var _ ports.Logger = (*NopLogger)(nil)
