package reach

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Index is the result of one reachability pass for a fixed target.
// It is immutable after Build and is meant to be discarded after use.
type Index struct {
	target    int
	weights   []int
	groups    []int
	reachable *roaring64.Bitmap
	last      map[int]int // sum -> position that first reached it
	roots     []int       // candidate roots, one per group, in position order
}

// Build runs the reachability pass over weights for target.
//
// groups[i] identifies the equality class of position i under the caller's
// order relation (order-equal positions share a group). It is used to record
// order-equal roots once and to treat paths over order-equal elements as the
// same subset. A nil groups makes every position its own group.
//
// weights must all be ≥ 0; the caller validates that.
func Build(weights []int, groups []int, target int) (*Index, error) {
	if target < 0 {
		return nil, ErrNegativeTarget
	}
	if groups == nil {
		groups = make([]int, len(weights))
		for i := range groups {
			groups[i] = i
		}
	} else if len(groups) != len(weights) {
		return nil, fmt.Errorf("%w: %d groups, %d weights", ErrLengthMismatch, len(groups), len(weights))
	}

	idx := &Index{
		target:    target,
		weights:   weights,
		groups:    groups,
		reachable: roaring64.New(),
		last:      map[int]int{0: Sentinel},
	}
	idx.reachable.Add(0)

	var (
		added     []uint64
		seenRoots = make(map[int]struct{})
		s, j      int
	)
	for i, w := range weights {
		if w == 0 || w > target {
			continue
		}
		added = added[:0]
		it := idx.reachable.ReverseIterator()
		for it.HasNext() {
			s = int(it.Next())
			j = s + w
			if j > target {
				continue
			}
			if j == target {
				if _, dup := seenRoots[groups[i]]; !dup {
					seenRoots[groups[i]] = struct{}{}
					idx.roots = append(idx.roots, i)
				}
			}
			if !idx.reachable.Contains(uint64(j)) {
				idx.last[j] = i
				added = append(added, uint64(j))
			}
		}
		// Publish after the scan: sums reached through i must not feed i again.
		idx.reachable.AddMany(added)
	}

	return idx, nil
}

// Target returns the sum the index was built for.
func (idx *Index) Target() int { return idx.target }

// Reachable reports whether some subset of the weights sums to s (s ≤ Target).
func (idx *Index) Reachable(s int) bool {
	return s >= 0 && idx.reachable.Contains(uint64(s))
}

// Len returns the number of reachable sums, including 0.
func (idx *Index) Len() int { return int(idx.reachable.GetCardinality()) }

// Last returns the position bound to sum s, or Sentinel for s == 0.
func (idx *Index) Last(s int) (int, bool) {
	p, ok := idx.last[s]

	return p, ok
}

// Roots returns the candidate roots: positions that can close the target.
func (idx *Index) Roots() []int { return slices.Clone(idx.roots) }

// Path walks back from root and returns the positions of one subset that
// sums to Target, in walk order (root first). It reports false when root is
// not a candidate root of this index.
func (idx *Index) Path(root int) ([]int, bool) {
	if !slices.Contains(idx.roots, root) {
		return nil, false
	}

	path := []int{root}
	s := idx.target - idx.weights[root]
	for s != 0 {
		p, ok := idx.last[s]
		if !ok || p == Sentinel {
			// unreachable: every bound sum decomposes down to 0
			return nil, false
		}
		path = append(path, p)
		s -= idx.weights[p]
	}

	return path, true
}

// Paths reconstructs one subset per candidate root and drops subsets that
// are equal as multisets of groups. Each returned path is sorted by position.
// The result is empty when the target is 0 or unreachable.
func (idx *Index) Paths() [][]int {
	var (
		out  [][]int
		seen = make(map[string]struct{}, len(idx.roots))
	)
	for _, r := range idx.roots {
		p, ok := idx.Path(r)
		if !ok {
			continue
		}
		slices.Sort(p)
		key := idx.signature(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	return out
}

// signature is the canonical multiset key of a path: its sorted group ids
// joined with commas.
func (idx *Index) signature(path []int) string {
	ids := make([]int, len(path))
	for k, p := range path {
		ids[k] = idx.groups[p]
	}
	slices.Sort(ids)

	var b strings.Builder
	for k, id := range ids {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}
