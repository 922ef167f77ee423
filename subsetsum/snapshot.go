package subsetsum

import (
	"slices"

	"github.com/katalvlaran/sumset/weighted"
)

// snapshot freezes the collection's current order so that positions stay
// stable while the collection itself shrinks.
type snapshot[T any] struct {
	items   []T
	weights []int
	// groups[i] is the first position of the run of elements order-equal to
	// items[i]. Runs are contiguous because the collection is sorted.
	groups []int
}

func takeSnapshot[T any](c *weighted.Collection[T]) snapshot[T] {
	s := snapshot[T]{
		items:   c.Items(),
		weights: make([]int, c.Size()),
		groups:  make([]int, c.Size()),
	}
	for i, it := range s.items {
		s.weights[i] = c.Weight(it)
		if i > 0 && c.Compare(s.items[i-1], it) == 0 {
			s.groups[i] = s.groups[i-1]
		} else {
			s.groups[i] = i
		}
	}

	return s
}

// pick materializes the elements at the given positions, in position order.
func (s snapshot[T]) pick(positions []int) []T {
	sorted := slices.Clone(positions)
	slices.Sort(sorted)
	out := make([]T, len(sorted))
	for k, p := range sorted {
		out[k] = s.items[p]
	}

	return out
}

// sameMultiset reports whether a and b, both in collection order, hold the
// same elements up to order-equality.
func sameMultiset[T any](c *weighted.Collection[T], a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if c.Compare(a[i], b[i]) != 0 {
			return false
		}
	}

	return true
}
