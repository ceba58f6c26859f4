package result

import (
	"iter"

	"github.com/FuelLabs/pest/pkg/span"
)

// FlatPairs iterates every pair inside a log range in depth-first order,
// nested matches included. Where Pairs jumps over subtrees, FlatPairs
// descends into them.
type FlatPairs[R comparable] struct {
	q      *eventLog[R]
	src    *span.Source
	lo, hi int
}

// Next returns the next pair in depth-first order. ok is false once the
// range is exhausted.
func (f *FlatPairs[R]) Next() (pair Pair[R], ok bool) {
	if f.lo >= f.hi {
		return Pair[R]{}, false
	}
	pair = Pair[R]{q: f.q, src: f.src, start: f.lo}
	// Step past this start marker, then past end markers to the next start.
	f.lo++
	for f.lo < f.hi && f.q.entries[f.lo].kind != entryStart {
		f.lo++
	}
	return pair, true
}

// All returns a range iterator over the remaining pairs. The receiver is not
// consumed; every range restarts from the receiver's current state.
func (f FlatPairs[R]) All() iter.Seq[Pair[R]] {
	return func(yield func(Pair[R]) bool) {
		it := f
		for {
			pair, ok := it.Next()
			if !ok || !yield(pair) {
				return
			}
		}
	}
}
