package weighted

import (
	"errors"
	"math"
)

// Unbounded is the default threshold: no combination is ever pruned by weight.
const Unbounded = math.MaxInt

var (
	// ErrNilWeightFunc is returned by New when the weight function is nil.
	ErrNilWeightFunc = errors.New("weighted: weight function is nil")

	// ErrNilCompareFunc is returned by New when the order relation is nil.
	ErrNilCompareFunc = errors.New("weighted: compare function is nil")

	// ErrNegativeWeight is returned by New when an element has a negative weight.
	ErrNegativeWeight = errors.New("weighted: negative weight")

	// ErrWeightOverflow is returned by New when the total weight does not fit in an int.
	ErrWeightOverflow = errors.New("weighted: total weight overflows int")
)

// WeightFunc extracts the non-negative integer weight of an element.
type WeightFunc[T any] func(T) int

// CompareFunc is a total preorder over elements. It returns a negative
// number when a < b, a positive number when a > b and 0 when the two are
// order-equal (indistinguishable for sorting, removal and deduplication).
type CompareFunc[T any] func(a, b T) int

// Option configures a Collection at construction.
type Option func(*Options)

// Options holds construction-time settings of a Collection.
type Options struct {
	// Threshold is the initial upper bound on combination weight.
	// Defaults to Unbounded.
	Threshold int
}

// DefaultOptions returns Options with an Unbounded threshold.
func DefaultOptions() Options {
	return Options{
		Threshold: Unbounded,
	}
}

// WithThreshold sets the initial threshold of the collection.
func WithThreshold(v int) Option {
	return func(o *Options) {
		o.Threshold = v
	}
}
