package subsetsum

import (
	"context"
	"errors"
	"log/slog"
)

var (
	// ErrNilCollection is reported by Err when an iterator was created over a
	// nil collection.
	ErrNilCollection = errors.New("subsetsum: collection is nil")

	// ErrNoCurrent is returned by Remove before the iterator produced any
	// combination.
	ErrNoCurrent = errors.New("subsetsum: Next must return true before Remove")

	// ErrAlreadyRemoved is returned by a second Remove for the same combination.
	ErrAlreadyRemoved = errors.New("subsetsum: current combination already removed")
)

// ctxCheckMask sets how often iterators poll their context: every 4096 steps.
const ctxCheckMask = 4095

// Option configures an iterator. Use with Find(c, target, opts...) or
// Combinations(c, opts...).
type Option func(*Options)

// Options holds the optional behaviour of both iterators.
type Options struct {
	// Ctx is polled sparsely while searching; once it is done the iterator
	// stops and Err returns Ctx.Err(). Defaults to context.Background().
	Ctx context.Context

	// Logger receives Debug records about index builds, length changes and
	// consumed combinations. Defaults to a logger that discards everything.
	Logger *Logger

	// MaxResults, if positive, caps the number of combinations produced.
	// Default is 0 (no cap).
	MaxResults int
}

// DefaultOptions returns Options with a background context, a no-op logger
// and no result cap.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Logger:     NoopLogger(),
		MaxResults: 0,
	}
}

// WithContext sets the context polled during the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes iterator diagnostics to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = &Logger{Logger: l}
		}
	}
}

// WithMaxResults stops the iterator after n combinations. n ≤ 0 means no cap.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		o.MaxResults = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
