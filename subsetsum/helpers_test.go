package subsetsum_test

import (
	"cmp"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumset/weighted"
)

// item is a distinct object ordered and weighed by Value only, so items that
// share a Value are order-equal although their Tags differ.
type item struct {
	Tag   string
	Value int
}

func itemWeight(it item) int { return it.Value }

func itemCompare(a, b item) int { return cmp.Compare(a.Value, b.Value) }

func ident(x int) int { return x }

// ints builds a collection of plain ints weighted by their own value.
func ints(t testing.TB, xs ...int) *weighted.Collection[int] {
	t.Helper()
	c, err := weighted.New(xs, ident, cmp.Compare[int])
	require.NoError(t, err)

	return c
}

// iterator is the surface shared by Finder and Enumerator.
type iterator[T any] interface {
	Next() bool
	Combination() []T
	Remove() error
	Err() error
}

// drain collects every remaining combination without consuming any.
func drain[T any](t testing.TB, it iterator[T]) [][]T {
	t.Helper()
	var out [][]T
	for it.Next() {
		out = append(out, it.Combination())
	}
	require.NoError(t, it.Err())

	return out
}

func sum(xs []int) int {
	var s int
	for _, x := range xs {
		s += x
	}

	return s
}

// signature renders a combination of ints in ascending order.
func signature(xs []int) string {
	s := slices.Clone(xs)
	slices.Sort(s)

	return fmt.Sprint(s)
}

// valuesOf maps items to their values.
func valuesOf(items []item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Value
	}

	return out
}

// bruteCombinations returns the signatures of all distinct non-empty
// sub-multisets of xs weighing at most limit.
func bruteCombinations(xs []int, limit int) map[string]bool {
	out := make(map[string]bool)
	n := len(xs)
	for mask := 1; mask < 1<<n; mask++ {
		var pick []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				pick = append(pick, xs[i])
			}
		}
		if sum(pick) <= limit {
			out[signature(pick)] = true
		}
	}

	return out
}

// bruteHasSubset reports whether some non-empty subset of xs sums to target.
func bruteHasSubset(xs []int, target int) bool {
	n := len(xs)
	for mask := 1; mask < 1<<n; mask++ {
		var s int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				s += xs[i]
			}
		}
		if s == target {
			return true
		}
	}

	return false
}

// isSubMultiset reports whether every value of sub occurs in of at least as
// many times as in sub.
func isSubMultiset(sub, of []int) bool {
	counts := make(map[int]int, len(of))
	for _, x := range of {
		counts[x]++
	}
	for _, x := range sub {
		if counts[x] == 0 {
			return false
		}
		counts[x]--
	}

	return true
}

// newItems builds a collection of items weighted and ordered by Value.
func newItems(items ...item) (*weighted.Collection[item], error) {
	return weighted.New(items, itemWeight, itemCompare)
}
