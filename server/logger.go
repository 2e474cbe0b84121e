// Package server carries the ambient concerns spec.md treats as external
// collaborators (§1): logging, configuration, the symbol table, and the
// command layer that decodes a request envelope into a dispatch.Dispatcher
// call. None of this is part of the kernel itself; it is the thin shell a
// real process would wrap around it.
package server

import (
	"context"
	"log/slog"
)

// Logger is the narrow logging surface threaded through the command layer.
// It is passed explicitly to every Dispatcher call rather than held as a
// package-level global, reworking the teacher's own "Design Notes" concern
// about global mutable state (spec.md) for the logging path.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

// NewLogger wraps an *slog.Logger. A nil logger falls back to slog.Default().
func NewLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l: l}
}

func (s slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

// noopLogger discards everything; used as Config's zero-value default so a
// Dispatcher built without WithLogger never needs a nil check.
type noopLogger struct{}

func (noopLogger) Debug(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, string, ...any) {}
