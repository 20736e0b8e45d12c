package mapline

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with mapline-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithChunk adds a chunk index field to the logger.
func (l *Logger) WithChunk(chunk int) *Logger {
	return &Logger{
		Logger: l.Logger.With("chunk", chunk),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", n),
	}
}

// LogOpen logs a mapping operation.
func (l *Logger) LogOpen(path string, size int64, segments int, err error) {
	if err != nil {
		l.Error("open failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("file mapped",
			"path", path,
			"size", size,
			"segments", segments,
		)
	}
}

// LogIngest logs a parallel ingestion run.
func (l *Logger) LogIngest(ctx context.Context, path string, lines int64, chunks int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest failed",
			"path", path,
			"lines", lines,
			"chunks", chunks,
			"duration", duration,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "ingest completed",
			"path", path,
			"lines", lines,
			"chunks", chunks,
			"duration", duration,
		)
	}
}
