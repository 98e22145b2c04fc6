package sememeval

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with evaluation-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewJSONLoggerTo(os.Stderr, level)
}

// NewJSONLoggerTo creates a JSON Logger writing to w.
func NewJSONLoggerTo(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithRunID adds a run_id field to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", id)}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// WithWord adds a word field to the logger.
func (l *Logger) WithWord(word string) *Logger {
	return &Logger{Logger: l.Logger.With("word", word)}
}

// LogLoad logs the outcome of reading one dataset file.
func (l *Logger) LogLoad(ctx context.Context, name string, lines, kept int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"file", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "load completed",
		"file", name,
		"lines", lines,
		"kept", kept,
		"elapsed", elapsed,
	)
}

// LogEvaluate logs one evaluated word.
func (l *Logger) LogEvaluate(ctx context.Context, rec *Record, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluate failed",
			"word", rec.Word,
			"error", err,
		)
		return
	}
	if rec.Degenerate {
		l.WarnContext(ctx, "no predicted sememe is in the gold set",
			"word", rec.Word,
			"gold", rec.Gold,
			"predicted", topLabels(rec, 10),
		)
		return
	}
	l.DebugContext(ctx, "evaluate completed",
		"word", rec.Word,
		"ap", rec.AP,
		"f1", rec.F1,
		"selected", len(rec.Selected),
	)
}

// LogCheckpoint logs run progress.
func (l *Logger) LogCheckpoint(ctx context.Context, cp Checkpoint) {
	args := []any{
		"done", cp.Done,
		"total", cp.Total,
		"elapsed", cp.Elapsed,
	}
	if cp.Host != nil {
		args = append(args,
			"cpu_percent", cp.Host.CPUPercent,
			"mem_used_percent", cp.Host.MemUsedPercent,
		)
	}
	l.InfoContext(ctx, "checkpoint", args...)
}

// LogSummary logs the aggregate result of a run.
func (l *Logger) LogSummary(ctx context.Context, s *Summary) {
	l.InfoContext(ctx, "sememe prediction completed",
		"words", s.Words,
		"map", s.MAP,
		"mean_f1", s.MeanF1,
		"degenerate", s.Degenerate,
		"failed", s.Failed,
		"elapsed", s.Elapsed,
	)
}

func topLabels(rec *Record, n int) []string {
	out := make([]string, 0, min(n, len(rec.Scores)))
	for _, s := range rec.Scores {
		if len(out) == n {
			break
		}
		out = append(out, s.Label)
	}
	return out
}
