package subsetsum

import (
	"iter"
	"slices"

	"github.com/katalvlaran/sumset/reach"
	"github.com/katalvlaran/sumset/weighted"
)

// Finder lazily produces subsets of a collection whose weights sum exactly to
// a target, using one reachability pass (package reach) over the collection.
//
// Guarantee: if at least one such subset exists among the present elements,
// at least one is produced. Not every such subset is produced.
//
// Edge cases:
//   - target == 0 produces nothing (the empty subset is not surfaced).
//   - target < 0 or target > Quantity() produces nothing.
//
// The Finder never modifies the collection on its own; Remove does, on request.
type Finder[T any] struct {
	c      *weighted.Collection[T]
	target int
	opts   Options

	built   bool
	version uint64 // collection version the pending results were built from
	pending [][]T
	yielded [][]T // produced and not consumed; never produced twice

	current []T
	removed bool
	count   int
	err     error
}

// Find returns a Finder over c for target. Nothing is computed until the
// first call to Next.
func Find[T any](c *weighted.Collection[T], target int, opts ...Option) *Finder[T] {
	f := &Finder[T]{
		c:      c,
		target: target,
		opts:   buildOptions(opts),
	}
	if c == nil {
		f.err = ErrNilCollection
	}

	return f
}

// Next advances to the next combination. It returns false when the finder is
// exhausted, capped by WithMaxResults, or stopped by an error (see Err).
//
// If the collection changed since the last reachability pass (through Remove
// or through any other holder of the collection), the pass is rebuilt over
// the present elements first.
func (f *Finder[T]) Next() bool {
	if f.err != nil {
		return false
	}
	if f.opts.MaxResults > 0 && f.count >= f.opts.MaxResults {
		return false
	}
	if err := f.opts.Ctx.Err(); err != nil {
		f.err = err

		return false
	}
	if !f.built || f.version != f.c.Version() {
		if err := f.build(); err != nil {
			f.err = err

			return false
		}
	}

	for len(f.pending) > 0 {
		next := f.pending[0]
		f.pending = f.pending[1:]
		if f.seen(next) {
			continue
		}
		f.current = next
		f.removed = false
		f.yielded = append(f.yielded, next)
		f.count++

		return true
	}

	return false
}

// Combination returns a copy of the combination produced by the last
// successful Next, in collection order. It is nil before the first Next.
func (f *Finder[T]) Combination() []T { return slices.Clone(f.current) }

// Remove consumes the current combination: its elements are removed from the
// collection, and the next call to Next rebuilds the results over what is
// left. Removed elements are never offered again.
//
// Errors: ErrNoCurrent before the first combination, ErrAlreadyRemoved when
// the current combination was already consumed.
func (f *Finder[T]) Remove() error {
	if f.current == nil {
		return ErrNoCurrent
	}
	if f.removed {
		return ErrAlreadyRemoved
	}

	removed := f.c.RemoveAll(f.current)
	f.removed = true
	f.yielded = slices.DeleteFunc(f.yielded, func(y []T) bool {
		return sameMultiset(f.c, y, f.current)
	})
	f.built = false
	f.pending = nil
	f.opts.Logger.LogConsume(f.opts.Ctx, "finder", len(f.current), removed, f.c.Quantity())

	return nil
}

// Err returns the error that stopped the finder, or nil after normal exhaustion.
func (f *Finder[T]) Err() error { return f.err }

// All adapts the finder to a range-over-func sequence. The loop body may call
// Remove on the finder to consume the combination it was given.
func (f *Finder[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for f.Next() {
			if !yield(f.Combination()) {
				return
			}
		}
	}
}

// build runs one reachability pass over the present elements.
func (f *Finder[T]) build() error {
	f.built = true
	f.version = f.c.Version()
	f.pending = nil
	if f.target <= 0 || f.target > f.c.Quantity() {
		return nil
	}

	snap := takeSnapshot(f.c)
	idx, err := reach.Build(snap.weights, snap.groups, f.target)
	if err != nil {
		return err
	}
	paths := idx.Paths()
	f.pending = make([][]T, 0, len(paths))
	for _, p := range paths {
		f.pending = append(f.pending, snap.pick(p))
	}
	f.opts.Logger.LogIndexBuilt(f.opts.Ctx, f.target, idx.Len(), len(paths))

	return nil
}

// seen reports whether an equal combination was already produced and is
// still unconsumed.
func (f *Finder[T]) seen(comb []T) bool {
	for _, y := range f.yielded {
		if sameMultiset(f.c, y, comb) {
			return true
		}
	}

	return false
}
