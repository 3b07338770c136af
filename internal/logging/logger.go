// Package logging defines a minimal structured-logging interface used across
// the project. Implementations wrap slog and zap.
package logging

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "starting server", "addr", addr, "mode", mode)
type Logger interface {
	// Debug logs diagnostic details that are off in production.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// Supported values for the LogFormat setting.
const (
	FormatSlog = "slog"
	FormatZap  = "zap"
)

// New builds the logger selected by format. The returned func flushes
// buffered entries and should be deferred by the caller.
func New(format string) (Logger, func(), error) {
	switch format {
	case "", FormatSlog:
		return NewSlogJSONLogger(os.Stdout), func() {}, nil
	case FormatZap:
		z, err := zap.NewProduction()
		if err != nil {
			return nil, nil, fmt.Errorf("zap init error: %w", err)
		}
		return NewZapLogger(z), func() { _ = z.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", format)
	}
}
