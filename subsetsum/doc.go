// Package subsetsum enumerates subsets of a weighted.Collection whose weights
// hit or stay within a target, as lazy, mutation-aware iterators.
//
// What:
//
//   - Find(c, target): fast subset finder. One reachability pass (package
//     reach) over the collection yields some subsets summing exactly to
//     target. If any subset exists, at least one is produced; not all are.
//   - Combinations(c): combination search. Produces combinations of strictly
//     decreasing length, from the number of live elements down to 1, each
//     weighing at most c.Threshold(), without repeating combinations that
//     differ only by the choice among order-equal elements.
//
// Both iterators share one surface:
//
//	it := subsetsum.Combinations(c)
//	for it.Next() {
//		comb := it.Combination()
//		if accept(comb) {
//			_ = it.Remove() // consume: drop comb from c and from later results
//		}
//	}
//	if err := it.Err(); err != nil { ... }
//
// or, with range-over-func, `for comb := range it.All() { ... }`.
//
// Consume semantics:
//
//	Remove deletes the last produced combination from the backing collection.
//	Both iterators notice removals made through any holder of the collection
//	(see weighted.Collection.Version): the finder rebuilds its reachability
//	pass, the combination search drops the removed elements from its live set.
//
// Options:
//
//   - WithContext(ctx)  polled every 4096 search steps; Err returns ctx.Err()
//   - WithLogger(l)     Debug records through log/slog
//   - WithMaxResults(n) stop after n combinations
//
// Complexity:
//
//   - Find:          O(n·R) per pass, R ≤ target+1 reachable sums
//   - Combinations:  exponential in the worst case; pruned by threshold and
//     duplicate suppression; memory O(n) for the frame stack and live set
//
// Errors:
//
//   - ErrNilCollection   iterator created over a nil collection (via Err)
//   - ErrNoCurrent       Remove before the first combination
//   - ErrAlreadyRemoved  Remove twice for the same combination
//   - context errors     via Err when the context ends the search
//
// Exhaustion is not an error: Next returns false and Err returns nil.
//
// Iterators are not safe for concurrent use, and at most one iterator should
// remove elements from a collection at a time.
package subsetsum
