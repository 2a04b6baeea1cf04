package elimination

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with elimination-specific field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at debug level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// pivotStep records one successful forward pivot.
func (l *Logger) pivotStep(row, col, swappedWith, xors int) {
	l.Debug("pivot",
		slog.String("op", opForward),
		slog.Int("row", row),
		slog.Int("col", col),
		slog.Int("swapped_with", swappedWith),
		slog.Int("xors", xors),
	)
}

// skipColumn records an all-zero column dropped by the forward pass.
func (l *Logger) skipColumn(row, col int) {
	l.Debug("skip column", slog.String("op", opForward), slog.Int("row", row), slog.Int("col", col))
}

// backStep records one backward substitution step.
func (l *Logger) backStep(row, col, xors int) {
	l.Debug("substitute",
		slog.String("op", opBackward),
		slog.Int("row", row),
		slog.Int("col", col),
		slog.Int("xors", xors),
	)
}

// summary records the end of a pass.
func (l *Logger) summary(op string, t *Trace) {
	l.Debug("done",
		slog.String("op", op),
		slog.Int("rank", t.Rank()),
		slog.Uint64("skipped", t.SkippedColumns.GetCardinality()),
		slog.Int("swaps", t.Swaps),
		slog.Int("xors", t.XORs),
	)
}
