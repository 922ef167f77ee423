package weighted

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Collection is an ordered, shrink-only sequence of weighted elements.
//
// Invariants:
//   - items is sorted by cmp (stable with respect to the input order).
//   - quantity == Σ weight(items[i]).
//   - every weight is ≥ 0.
type Collection[T any] struct {
	items     []T
	weight    WeightFunc[T]
	cmp       CompareFunc[T]
	quantity  int
	threshold int
	version   uint64
}

// New copies items, validates their weights and sorts the copy by cmp.
// The input slice is never modified.
//
// Errors: ErrNilWeightFunc, ErrNilCompareFunc, ErrNegativeWeight and
// ErrWeightOverflow (wrapped with the offending position in the input).
//
// Complexity: O(n log n).
func New[T any](items []T, weight WeightFunc[T], cmp CompareFunc[T], opts ...Option) (*Collection[T], error) {
	if weight == nil {
		return nil, ErrNilWeightFunc
	}
	if cmp == nil {
		return nil, ErrNilCompareFunc
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		total int
		w     int
	)
	for i, it := range items {
		w = weight(it)
		if w < 0 {
			return nil, fmt.Errorf("%w: item %d has weight %d", ErrNegativeWeight, i, w)
		}
		if w > math.MaxInt-total {
			return nil, fmt.Errorf("%w: at item %d", ErrWeightOverflow, i)
		}
		total += w
	}

	data := slices.Clone(items)
	slices.SortStableFunc(data, cmp)

	return &Collection[T]{
		items:     data,
		weight:    weight,
		cmp:       cmp,
		quantity:  total,
		threshold: o.Threshold,
	}, nil
}

// Size returns the number of elements currently present.
func (c *Collection[T]) Size() int { return len(c.items) }

// IsEmpty reports whether no element is left.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Quantity returns the sum of the weights of the present elements.
func (c *Collection[T]) Quantity() int { return c.quantity }

// Threshold returns the current upper bound on combination weight.
func (c *Collection[T]) Threshold() int { return c.threshold }

// SetThreshold replaces the upper bound on combination weight.
// Running enumerators observe the new value on their next step.
func (c *Collection[T]) SetThreshold(v int) { c.threshold = v }

// Version counts successful removals. Iterators compare it against the value
// they last saw to detect removals made by someone else.
func (c *Collection[T]) Version() uint64 { return c.version }

// Weight returns the weight of x as reported by the collection's WeightFunc.
func (c *Collection[T]) Weight(x T) int { return c.weight(x) }

// Compare applies the collection's order relation.
func (c *Collection[T]) Compare(a, b T) int { return c.cmp(a, b) }

// At returns the element at position i in collection order.
// It panics if i is out of range, like a slice index.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// Items returns a copy of the present elements in collection order.
func (c *Collection[T]) Items() []T { return slices.Clone(c.items) }

// All iterates over the present elements in collection order.
// The collection must not be modified during the iteration.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, it := range c.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Contains reports whether an element order-equal to x is present.
func (c *Collection[T]) Contains(x T) bool {
	_, found := c.index(x)

	return found
}

// Remove deletes the first element order-equal to x, preserving the order of
// the rest, and decrements Quantity by that element's weight.
// It returns false and leaves the collection untouched when no element matches.
func (c *Collection[T]) Remove(x T) bool {
	i, found := c.index(x)
	if !found {
		return false
	}
	c.quantity -= c.weight(c.items[i])
	c.items = slices.Delete(c.items, i, i+1)
	c.version++

	return true
}

// RemoveAll calls Remove once per element of xs. Elements that are not
// found are skipped; there is no rollback. It returns how many were removed.
func (c *Collection[T]) RemoveAll(xs []T) int {
	var removed int
	for _, x := range xs {
		if c.Remove(x) {
			removed++
		}
	}

	return removed
}

// Clone returns an independent copy with the same elements, functions and
// threshold.
func (c *Collection[T]) Clone() *Collection[T] {
	return &Collection[T]{
		items:     slices.Clone(c.items),
		weight:    c.weight,
		cmp:       c.cmp,
		quantity:  c.quantity,
		threshold: c.threshold,
		version:   c.version,
	}
}

// index finds the first position holding an element order-equal to x.
// The sequence is sorted by cmp, so binary search lands on the leftmost match.
func (c *Collection[T]) index(x T) (int, bool) {
	return slices.BinarySearchFunc(c.items, x, c.cmp)
}
