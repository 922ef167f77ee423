// Package sumset is a small, pure-Go toolkit for subset-sum style searches
// over weighted collections of any element type.
//
// 🚀 What is sumset?
//
//	Given elements that carry a non-negative integer weight and an order
//	relation, sumset answers two questions lazily, one result at a time:
//		• which subsets add up exactly to a target?   (fast, best-effort)
//		• which combinations stay within a threshold? (exhaustive, largest first)
//	and lets the caller consume a result, removing its elements from every
//	later answer.
//
// ✨ Why sumset?
//
//   - Generic – works on any T through a weight function and a comparator
//   - Lazy – iterators compute the next result on demand
//   - Multiset-aware – order-equal elements never produce duplicate answers
//   - Bounded memory – depth-first search on an explicit heap stack
//
// Packages:
//
//	weighted/  — Collection: sorted, shrink-only container with running total & threshold
//	reach/     — reachability index: one-pass 0/1 DP with path reconstruction
//	subsetsum/ — Find (fast subset finder) and Combinations (threshold search)
//
// Quick example:
//
//	c, _ := weighted.New([]int{1, 2, 3, 4}, func(x int) int { return x }, cmp.Compare[int])
//	for comb := range subsetsum.Find(c, 5).All() {
//		fmt.Println(comb) // [2 3], [1 4]
//	}
//
//	go get github.com/katalvlaran/sumset
package sumset
