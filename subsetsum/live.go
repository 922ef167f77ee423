package subsetsum

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/sumset/weighted"
)

// liveSet tracks which snapshot positions have not been consumed.
// Order-equal copies are distinct positions, which gives multiset semantics:
// consuming one copy leaves the others live.
type liveSet struct {
	bm     *roaring.Bitmap
	weight int // total weight of the live positions
}

func newLiveSet(weights []int) liveSet {
	l := liveSet{bm: roaring.New()}
	l.bm.AddRange(0, uint64(len(weights)))
	for _, w := range weights {
		l.weight += w
	}

	return l
}

func (l *liveSet) has(p int) bool { return l.bm.Contains(uint32(p)) }

func (l *liveSet) size() int { return int(l.bm.GetCardinality()) }

// kill consumes position p of weight w. It reports false if p was not live.
func (l *liveSet) kill(p, w int) bool {
	if !l.bm.CheckedRemove(uint32(p)) {
		return false
	}
	l.weight -= w

	return true
}

// positions returns the live positions in ascending order.
func (l *liveSet) positions() []int {
	raw := l.bm.ToArray()
	out := make([]int, len(raw))
	for i, p := range raw {
		out[i] = int(p)
	}

	return out
}

// allLive reports whether every position in ps is still live.
func (l *liveSet) allLive(ps []int) bool {
	for _, p := range ps {
		if !l.has(p) {
			return false
		}
	}

	return true
}

// resync drops live positions that the collection no longer holds, keeping,
// within each run of order-equal positions, the first live ones up to the
// number of copies still present. It returns how many positions were dropped.
func resync[T any](l *liveSet, snap snapshot[T], c *weighted.Collection[T]) int {
	copies := make(map[int]int)
	for _, it := range c.All() {
		if p, found := slices.BinarySearchFunc(snap.items, it, c.Compare); found {
			copies[snap.groups[p]]++
		}
	}

	var dropped int
	for p := range snap.items {
		if !l.has(p) {
			continue
		}
		g := snap.groups[p]
		if copies[g] > 0 {
			copies[g]--

			continue
		}
		l.kill(p, snap.weights[p])
		dropped++
	}

	return dropped
}
