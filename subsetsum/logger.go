package subsetsum

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the field names used by the iterators.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger over handler.
// If handler is nil, a text handler to stderr at Debug level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogIndexBuilt records one reachability pass of the fast finder.
func (l *Logger) LogIndexBuilt(ctx context.Context, target, reachable, results int) {
	l.DebugContext(ctx, "reachability index built",
		"target", target,
		"reachable_sums", reachable,
		"results", results,
	)
}

// LogLength records that the combination search moved to a new length.
func (l *Logger) LogLength(ctx context.Context, length, live int) {
	l.DebugContext(ctx, "combination length started",
		"length", length,
		"live", live,
	)
}

// LogConsume records the removal of a yielded combination.
func (l *Logger) LogConsume(ctx context.Context, engine string, size, removed, quantity int) {
	if removed != size {
		l.WarnContext(ctx, "combination partially consumed",
			"engine", engine,
			"size", size,
			"removed", removed,
			"quantity", quantity,
		)

		return
	}
	l.DebugContext(ctx, "combination consumed",
		"engine", engine,
		"size", size,
		"quantity", quantity,
	)
}

// LogResync records that an iterator caught up with removals made elsewhere.
func (l *Logger) LogResync(ctx context.Context, engine string, dropped int) {
	l.DebugContext(ctx, "resynced with collection",
		"engine", engine,
		"dropped", dropped,
	)
}
