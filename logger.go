package seggo

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with seggo-specific helpers so operations
// log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithN adds the number of columns to the logger.
func (l *Logger) WithN(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n),
	}
}

// WithAlgorithm adds the algorithm name to the logger.
func (l *Logger) WithAlgorithm(a Algorithm) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", a.String()),
	}
}

// LogSegment logs a segmentation operation.
func (l *Logger) LogSegment(ctx context.Context, a Algorithm, n, segments int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "segmentation failed",
			"algorithm", a.String(),
			"n", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "segmentation completed",
			"algorithm", a.String(),
			"n", n,
			"segments", segments,
		)
	}
}

// LogPenaltyEstimate logs an automatic penalty estimation.
func (l *Logger) LogPenaltyEstimate(ctx context.Context, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "penalty estimation failed",
			"n", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "penalty estimation completed",
			"n", n,
		)
	}
}
