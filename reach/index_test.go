package reach_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumset/reach"
)

// pathSum adds up the weights at the given positions.
func pathSum(weights, path []int) int {
	var s int
	for _, p := range path {
		s += weights[p]
	}

	return s
}

// bruteReachable reports whether some subset of weights sums to target.
func bruteReachable(weights []int, target int) bool {
	n := len(weights)
	for mask := 1; mask < 1<<n; mask++ {
		var s int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				s += weights[i]
			}
		}
		if s == target {
			return true
		}
	}

	return false
}

func TestBuild_NegativeTarget(t *testing.T) {
	_, err := reach.Build([]int{1, 2}, nil, -1)
	assert.ErrorIs(t, err, reach.ErrNegativeTarget)
}

func TestBuild_GroupsLengthMismatch(t *testing.T) {
	_, err := reach.Build([]int{1, 2}, []int{0}, 3)
	assert.ErrorIs(t, err, reach.ErrLengthMismatch)
}

func TestBuild_OneToFour(t *testing.T) {
	w := []int{1, 2, 3, 4}
	idx, err := reach.Build(w, nil, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, idx.Target())
	assert.Equal(t, 6, idx.Len(), "every sum 0..5 is reachable")
	for s := 0; s <= 5; s++ {
		assert.True(t, idx.Reachable(s), "sum %d", s)
	}
	assert.False(t, idx.Reachable(-1))

	assert.Equal(t, []int{2, 3}, idx.Roots())

	p, ok := idx.Path(2)
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, p, "3 then 2")

	p, ok = idx.Path(3)
	require.True(t, ok)
	assert.Equal(t, []int{3, 0}, p, "4 then 1")

	assert.Equal(t, [][]int{{1, 2}, {0, 3}}, idx.Paths())

	last, ok := idx.Last(0)
	require.True(t, ok)
	assert.Equal(t, reach.Sentinel, last)
}

func TestPath_NotARoot(t *testing.T) {
	idx, err := reach.Build([]int{1, 2, 3, 4}, nil, 5)
	require.NoError(t, err)

	_, ok := idx.Path(0)
	assert.False(t, ok)
}

func TestBuild_ZeroTarget(t *testing.T) {
	idx, err := reach.Build([]int{1, 2}, nil, 0)
	require.NoError(t, err)

	assert.True(t, idx.Reachable(0))
	assert.Equal(t, 1, idx.Len())
	assert.Empty(t, idx.Roots())
	assert.Empty(t, idx.Paths())
}

func TestBuild_Unreachable(t *testing.T) {
	idx, err := reach.Build([]int{2, 4, 6}, nil, 5)
	require.NoError(t, err)

	assert.False(t, idx.Reachable(5))
	assert.Empty(t, idx.Paths())
}

func TestBuild_ZeroWeightsIgnored(t *testing.T) {
	w := []int{0, 0, 3, 0}
	idx, err := reach.Build(w, nil, 3)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{2}}, idx.Paths())
}

func TestBuild_NoReuseOfOneElement(t *testing.T) {
	// 3 alone cannot make 6.
	idx, err := reach.Build([]int{3}, nil, 6)
	require.NoError(t, err)
	assert.False(t, idx.Reachable(6))
}

func TestBuild_GroupsCollapseOrderEqualRoots(t *testing.T) {
	w := []int{2, 2, 2}

	idx, err := reach.Build(w, []int{0, 0, 0}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, idx.Roots())
	assert.Equal(t, [][]int{{0, 1}}, idx.Paths())

	idx, err = reach.Build(w, nil, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, idx.Roots())
	assert.Equal(t, [][]int{{0, 1}, {0, 2}}, idx.Paths())
}

// TestBuild_SoundAndAtLeastOne checks on random inputs that every path sums
// to the target with distinct positions, and that a path exists whenever a
// subset does.
func TestBuild_SoundAndAtLeastOne(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 300; round++ {
		n := 1 + rng.IntN(10)
		w := make([]int, n)
		var total int
		for i := range w {
			w[i] = rng.IntN(12)
			total += w[i]
		}
		target := 1 + rng.IntN(total+1)

		idx, err := reach.Build(w, nil, target)
		require.NoError(t, err)

		paths := idx.Paths()
		for _, p := range paths {
			assert.Equal(t, target, pathSum(w, p), "weights %v target %d", w, target)
			seen := make(map[int]bool, len(p))
			for _, pos := range p {
				assert.False(t, seen[pos], "position %d reused in %v", pos, p)
				seen[pos] = true
			}
		}
		assert.Equal(t, bruteReachable(w, target), len(paths) > 0, "weights %v target %d", w, target)
		assert.Equal(t, len(paths) > 0, idx.Reachable(target))
	}
}
