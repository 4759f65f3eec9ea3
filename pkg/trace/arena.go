package trace

import "github.com/tylerw/go-packet-raytracer/pkg/core"

// Arena is a per-pass scratch allocator. It owns the backing storage for
// a HitStore's staging lists and for the pass output buffer; Reset
// truncates everything in place so the next pass reuses the capacity
// already grown. An Arena must never be shared between workers — each
// worker owns one for the duration of its batch.
type Arena struct {
	lists [][]core.Hit
	out   []core.Intersection
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

// hitLists hands out n empty staging lists backed by the arena, reusing
// each list's capacity from previous passes
func (a *Arena) hitLists(n int) [][]core.Hit {
	if cap(a.lists) < n {
		grown := make([][]core.Hit, n)
		copy(grown, a.lists)
		a.lists = grown
	}
	a.lists = a.lists[:n]
	for i := range a.lists {
		a.lists[i] = a.lists[i][:0]
	}
	return a.lists
}

// Intersections returns the arena's pass output buffer. The pointer
// stays valid across Reset; only the contents are truncated.
func (a *Arena) Intersections() *[]core.Intersection {
	return &a.out
}

// Reset truncates the staging lists and the output buffer without
// releasing their storage
func (a *Arena) Reset() {
	for i := range a.lists {
		a.lists[i] = a.lists[i][:0]
	}
	a.out = a.out[:0]
}
