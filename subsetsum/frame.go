package subsetsum

// none marks an unset position in a frame.
const none = -1

// frame is one pending step of the depth-first search. Frames live on an
// explicit slice-backed stack in place of call recursion, so the search depth
// is bounded by the heap, not by the goroutine stack.
type frame struct {
	cursor    int // next position to try
	depth     int // elements still missing from the combination; 0 = complete
	aggregate int // weight of the elements chosen so far
	previous  int // last position chosen at this depth (duplicate skip), or none
	added     int // position appended to the buffer when this frame was pushed, or none
}

// frameStack is a LIFO of frames reusing its backing array across lengths.
type frameStack []frame

func (s *frameStack) push(f ...frame) { *s = append(*s, f...) }

func (s *frameStack) pop() frame {
	old := *s
	f := old[len(old)-1]
	*s = old[:len(old)-1]

	return f
}

func (s *frameStack) empty() bool { return len(*s) == 0 }

func (s *frameStack) reset() { *s = (*s)[:0] }
