package pitchers

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with solver-specific helpers.
// This provides structured logging with consistent field names.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// LogReject logs a puzzle dropped by the GCD filter.
func (l *Logger) LogReject(capacities []int, target, gcd int) {
	l.Debug("target rejected by gcd filter",
		"capacities", capacities,
		"target", target,
		"gcd", gcd,
	)
}

// LogSolve logs the outcome of a completed search. Failures are returned
// to the caller, which decides whether to log them.
func (l *Logger) LogSolve(sol *Solution) {
	l.Debug("search completed",
		"steps", sol.Steps,
		"found", sol.Found,
		"states", sol.States,
	)
}
