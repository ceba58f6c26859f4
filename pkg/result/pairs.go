package result

import (
	"iter"
	"strings"

	"github.com/FuelLabs/pest/pkg/span"
)

// Pairs iterates sibling matches over a contiguous sub-range of the event
// log. Next advances to the index just past the current match's end marker,
// so a child's entire nested subtree is skipped in one step and traversal
// costs O(siblings), not O(log length). Pairs is a value; copying it forks
// the iteration state.
type Pairs[R comparable] struct {
	q      *eventLog[R]
	src    *span.Source
	lo, hi int
}

// Single wraps one already-obtained pair back into an iterator over exactly
// that match, for interfaces that hand back iterator-shaped results.
func Single[R comparable](p Pair[R]) Pairs[R] {
	return Pairs[R]{q: p.q, src: p.src, lo: p.start, hi: p.end()}
}

// Next returns the next sibling pair. ok is false once the range is
// exhausted; an empty range is exhausted from the start.
func (p *Pairs[R]) Next() (pair Pair[R], ok bool) {
	if p.lo >= p.hi {
		return Pair[R]{}, false
	}
	pair = Pair[R]{q: p.q, src: p.src, start: p.lo}
	p.lo = p.q.endIndexOf(p.lo) + 1
	return pair, true
}

// Peek returns the next sibling without consuming it.
func (p Pairs[R]) Peek() (Pair[R], bool) {
	if p.lo >= p.hi {
		return Pair[R]{}, false
	}
	return Pair[R]{q: p.q, src: p.src, start: p.lo}, true
}

// All returns a range iterator over the remaining pairs. The receiver is not
// consumed; every range restarts from the receiver's current state.
func (p Pairs[R]) All() iter.Seq[Pair[R]] {
	return func(yield func(Pair[R]) bool) {
		it := p
		for {
			pair, ok := it.Next()
			if !ok || !yield(pair) {
				return
			}
		}
	}
}

// Text returns the slice of source text covered by the remaining range, from
// the first pair's start to the last pair's end, or "" when exhausted.
func (p Pairs[R]) Text() string {
	if p.lo >= p.hi {
		return ""
	}
	return p.src.Text()[p.q.posAt(p.lo):p.q.posAt(p.hi-1)]
}

// Concat returns the concatenated matched text of the remaining pairs.
// Unlike Text it does not include gaps between siblings.
func (p Pairs[R]) Concat() string {
	var b strings.Builder
	for pair := range p.All() {
		b.WriteString(pair.Text())
	}
	return b.String()
}

// Flatten returns a depth-first iterator over every pair in the range,
// nested matches included.
func (p Pairs[R]) Flatten() FlatPairs[R] {
	return FlatPairs[R]{q: p.q, src: p.src, lo: p.lo, hi: p.hi}
}

// Tokens returns a flat iterator over every raw event in the range.
func (p Pairs[R]) Tokens() Tokens[R] {
	return Tokens[R]{q: p.q, src: p.src, lo: p.lo, hi: p.hi}
}

// String renders the remaining pairs as [pair, pair].
func (p Pairs[R]) String() string {
	var b strings.Builder
	b.WriteString("[")
	first := true
	for pair := range p.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		pair.writeTo(&b)
	}
	b.WriteString("]")
	return b.String()
}
