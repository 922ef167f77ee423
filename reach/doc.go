// Package reach builds the reachability index behind the fast subset finder:
// a one-pass 0/1 dynamic program over element weights that remembers, for
// every reachable partial sum, the single element that first reached it.
//
// 🚀 What:
//
//	Given weights w[0..n-1] (all ≥ 0) and a target t, Build marks every sum
//	s ≤ t that some subset of the weights reaches, and binds s to the
//	position of the element that reached it first. Every element that can
//	close the exact target is recorded as a candidate root. Walking back from
//	a root (subtract its weight, look up the element bound to the new sum,
//	repeat) reconstructs one subset per root.
//
// ⚙️ Algorithm:
//  1. reachable = {0}, bound to Sentinel.
//  2. For each position i in order (weights of 0 never change reachability
//     and are skipped), for each reachable sum s in descending order with
//     j = s + w[i] ≤ t:
//     j == t      → i is a candidate root (order-equal roots recorded once);
//     j unmarked  → mark j, bind j → i.
//     Sums marked during position i are not visible to position i itself, so
//     no element is used twice (0/1, not unbounded, inclusion).
//  3. Path(root): bind t → root, then s := t; while s ≠ 0 { i := bound(s);
//     emit i; s -= w[i] }. Every bound sum decomposes down to exactly 0
//     through strictly earlier positions, so the walk always terminates.
//
// Reachable sums are stored in a roaring64 bitmap, so the DP touches only
// sums that are actually reachable instead of scanning every j in [1, t].
//
// Guarantee: if any subset of the weights sums to t, Paths returns at least
// one. It does not return every such subset.
//
// Complexity:
//
//   - Build: Time O(n·R) where R ≤ t+1 is the number of reachable sums,
//     Memory O(R)
//   - Path:  O(n)
//
// Errors:
//
//   - ErrNegativeTarget  target < 0
//   - ErrLengthMismatch  groups is non-nil and its length differs from weights
package reach
