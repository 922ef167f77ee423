package subsetsum

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/sumset/weighted"
)

// Enumerator lazily produces combinations of a collection in strictly
// decreasing length, from the number of live elements down to 1.
//
// Rules:
//   - A combination never weighs more than the collection's Threshold, read
//     afresh on every step (aggregate > threshold prunes; equal is allowed).
//   - Combinations that differ only by which of several order-equal elements
//     sits at the same place are produced once.
//   - Elements consumed through Remove, or removed from the collection by
//     anyone else, are never offered again.
//
// When a new length equals the number of live elements, the whole live set is
// the only candidate and is produced directly (if it fits the threshold).
// Shorter lengths are searched depth-first with an explicit frame stack.
type Enumerator[T any] struct {
	c    *weighted.Collection[T]
	opts Options

	snap    snapshot[T]
	live    liveSet
	version uint64

	outer     int        // length being enumerated
	searching bool       // stack holds a search for outer
	stack     frameStack // pending search steps
	buf       []int      // positions tentatively chosen on the current branch
	steps     int
	// emitted holds the group signatures produced at length outer and not
	// consumed since.
	emitted map[string]struct{}

	current []int
	removed bool
	count   int
	err     error
}

// Combinations returns an Enumerator over c. The collection's present
// elements are snapshotted; later removals only shrink the live set.
func Combinations[T any](c *weighted.Collection[T], opts ...Option) *Enumerator[T] {
	e := &Enumerator[T]{
		c:    c,
		opts: buildOptions(opts),
	}
	if c == nil {
		e.err = ErrNilCollection

		return e
	}
	e.snap = takeSnapshot(c)
	e.live = newLiveSet(e.snap.weights)
	e.version = c.Version()
	e.outer = e.live.size()
	e.emitted = make(map[string]struct{})

	return e
}

// Next advances to the next combination. It returns false when every length
// down to 1 is exhausted, when capped by WithMaxResults, or when stopped by
// an error (see Err).
func (e *Enumerator[T]) Next() bool {
	if e.err != nil {
		return false
	}
	if e.opts.MaxResults > 0 && e.count >= e.opts.MaxResults {
		return false
	}
	if err := e.opts.Ctx.Err(); err != nil {
		e.err = err

		return false
	}
	e.catchUp()

	comb, ok := e.advance()
	if !ok {
		return false
	}
	e.current = comb
	e.removed = false
	e.count++

	return true
}

// Combination returns a copy of the combination produced by the last
// successful Next, in collection order. It is nil before the first Next.
func (e *Enumerator[T]) Combination() []T {
	if e.current == nil {
		return nil
	}

	return e.snap.pick(e.current)
}

// Remove consumes the current combination: its elements leave both the live
// set and the collection, and Quantity drops by their total weight.
//
// Errors: ErrNoCurrent before the first combination, ErrAlreadyRemoved when
// the current combination was already consumed.
func (e *Enumerator[T]) Remove() error {
	if e.current == nil {
		return ErrNoCurrent
	}
	if e.removed {
		return ErrAlreadyRemoved
	}

	// Removals made elsewhere since the last Next must land in the live set
	// before the version is advanced past them.
	e.catchUp()

	var held []int
	for _, p := range e.current {
		if e.live.kill(p, e.snap.weights[p]) {
			held = append(held, p)
		}
	}
	items := e.snap.pick(held)
	removed := e.c.RemoveAll(items)
	e.version = e.c.Version()
	delete(e.emitted, e.signature(e.current))
	e.removed = true
	e.opts.Logger.LogConsume(e.opts.Ctx, "combinations", len(items), removed, e.c.Quantity())

	return nil
}

// Err returns the error that stopped the enumerator, or nil after normal
// exhaustion.
func (e *Enumerator[T]) Err() error { return e.err }

// All adapts the enumerator to a range-over-func sequence. The loop body may
// call Remove on the enumerator to consume the combination it was given.
func (e *Enumerator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for e.Next() {
			if !yield(e.Combination()) {
				return
			}
		}
	}
}

// catchUp resyncs the live set when the collection changed behind our back.
func (e *Enumerator[T]) catchUp() {
	v := e.c.Version()
	if v == e.version {
		return
	}
	dropped := resync(&e.live, e.snap, e.c)
	e.version = v
	e.opts.Logger.LogResync(e.opts.Ctx, "combinations", dropped)
}

// signature is the multiset key of a combination: its sorted group ids.
func (e *Enumerator[T]) signature(positions []int) string {
	ids := make([]int, len(positions))
	for k, p := range positions {
		ids[k] = e.snap.groups[p]
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

// advance produces the positions of the next combination.
func (e *Enumerator[T]) advance() ([]int, bool) {
	for e.outer > 0 {
		n := e.live.size()
		if !e.searching {
			switch {
			case n < e.outer:
				e.outer--

				continue
			case n == e.outer:
				// The whole live set is the only combination of this length.
				e.outer--
				if e.live.weight <= e.c.Threshold() {
					return e.live.positions(), true
				}

				continue
			}
			e.stack.reset()
			e.stack.push(frame{cursor: 0, depth: e.outer, previous: none, added: none})
			e.buf = e.buf[:0]
			clear(e.emitted)
			e.searching = true
			e.opts.Logger.LogLength(e.opts.Ctx, e.outer, n)
		}

		if e.search() {
			comb := slices.Clone(e.buf)
			e.emitted[e.signature(comb)] = struct{}{}

			return comb, true
		}
		if e.err != nil {
			return nil, false
		}
		e.searching = false
		e.outer--
	}

	return nil, false
}

// search runs the depth-first search for length e.outer until the next
// complete combination (left in e.buf) or until the stack is empty.
//
// A popped frame with depth > 0 first takes back the position it had added
// to the buffer, then scans forward from its cursor for a position that is
//   - live,
//   - not order-equal to the previous choice at this depth, unless that choice
//     was consumed (its twin may then complete a combination that is new),
//   - light enough to keep the aggregate within the threshold.
//
// The branch is abandoned when the aggregate already exceeds the threshold,
// when a chosen position has been consumed, or when fewer positions remain
// than the depth needs. On a hit it pushes the continuation (same depth,
// remembering the hit) and then the descent (depth−1), so the descent runs
// first.
//
// Lifting the duplicate skip after a consume can rebuild a multiset that was
// already produced at this length and kept by the caller; a complete
// combination whose signature is still in e.emitted is therefore dropped.
func (e *Enumerator[T]) search() bool {
	var (
		f         frame
		threshold int
		w         int
		n         = len(e.snap.items)
	)
	for !e.stack.empty() {
		if e.steps++; e.steps&ctxCheckMask == 0 {
			if err := e.opts.Ctx.Err(); err != nil {
				e.err = err

				return false
			}
		}

		f = e.stack.pop()
		if f.depth == 0 {
			if _, dup := e.emitted[e.signature(e.buf)]; dup {
				continue
			}

			return true
		}
		if f.added != none {
			e.buf = e.buf[:len(e.buf)-1]
		}

		threshold = e.c.Threshold()
		if f.aggregate > threshold || !e.live.allLive(e.buf) {
			continue
		}
		for i := f.cursor; i < n; i++ {
			if n-i < f.depth {
				break
			}
			if !e.live.has(i) {
				continue
			}
			if f.previous != none && e.live.has(f.previous) && e.snap.groups[i] == e.snap.groups[f.previous] {
				continue
			}
			w = e.snap.weights[i]
			if w > threshold-f.aggregate {
				continue
			}
			e.buf = append(e.buf, i)
			e.stack.push(
				frame{cursor: i + 1, depth: f.depth, aggregate: f.aggregate, previous: i, added: i},
				frame{cursor: i + 1, depth: f.depth - 1, aggregate: f.aggregate + w, previous: none, added: none},
			)

			break
		}
	}

	return false
}
