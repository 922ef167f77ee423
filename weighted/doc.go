// Package weighted provides Collection, an ordered container of elements of
// an arbitrary type that carry a non-negative integer weight.
//
// What:
//
//   - Elements are copied from the caller's input and stably sorted by a
//     caller-supplied order relation (CompareFunc).
//   - A caller-supplied WeightFunc maps every element to its weight.
//   - Quantity is the running sum of the weights of the elements currently
//     present. It is maintained incrementally on removal.
//   - Threshold is a mutable upper bound on the weight of a combination,
//     read by the combination search in package subsetsum. Default: Unbounded.
//
// The collection never grows. It shrinks only through Remove / RemoveAll,
// which match elements by order-equality (CompareFunc returns 0), not by
// identity. A missing element is a normal outcome reported as false.
//
// Complexity:
//
//   - New:       O(n log n) (stable sort) + O(n) (weights)
//   - Remove:    O(log n) search + O(n) shift
//   - RemoveAll: O(k·n)
//
// Errors:
//
//   - ErrNilWeightFunc   weight function is nil
//   - ErrNilCompareFunc  order relation is nil
//   - ErrNegativeWeight  an element reported a negative weight
//   - ErrWeightOverflow  the total weight does not fit in an int
//
// Collection is not safe for concurrent use.
package weighted
