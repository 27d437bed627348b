package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, OrDefault(logger))
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithOperation tags the context logger with the running command.
func WithOperation(ctx context.Context, operation string) context.Context {
	logger := FromContext(ctx).With().Str("operation", operation).Logger()
	return WithLogger(ctx, &logger)
}

// WithDataDir tags the context logger with the input directory.
func WithDataDir(ctx context.Context, dir string) context.Context {
	logger := FromContext(ctx).With().Str("data_dir", dir).Logger()
	return WithLogger(ctx, &logger)
}
