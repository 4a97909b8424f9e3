package logger

import (
	"context"

	"github.com/narwhalmedia/marquee/pkg/interfaces"
)

type contextKey struct{}

// FromContext retrieves a logger from the context. Callers without one get a no-op logger
// so library code never writes to stdout uninvited.
func FromContext(ctx context.Context) interfaces.Logger {
	if logger, ok := ctx.Value(contextKey{}).(interfaces.Logger); ok {
		return logger
	}
	return NewNoop()
}

// WithContext adds a logger to the context.
func WithContext(ctx context.Context, logger interfaces.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// WithFields adds fields to the logger in the context.
func WithFields(ctx context.Context, fields ...interfaces.Field) context.Context {
	return WithContext(ctx, FromContext(ctx).WithFields(fields...))
}
