package result

import (
	"fmt"

	"github.com/FuelLabs/pest/pkg/span"
)

// Builder records rule events while an engine matches input, and is the only
// way to produce an event log. Open and Close calls must bracket properly
// and move forward through the source; the builder enforces both here, which
// is what lets every derived view trust the log without re-validating it.
// Misuse panics: a malformed recording is an engine defect, not a runtime
// condition to recover from.
//
// A typical recursive-descent engine opens on rule entry, closes on success,
// and rolls back to a checkpoint on failure:
//
//	cp := b.Checkpoint()
//	b.Open(pos)
//	if newPos, matched := tryRule(pos); matched {
//		b.Close(RuleFoo, newPos)
//	} else {
//		b.Rollback(cp)
//	}
type Builder[R comparable] struct {
	src      *span.Source
	entries  []entry[R]
	open     []int // indices of start entries not yet closed
	finished bool
}

// NewBuilder returns a builder recording events over src.
func NewBuilder[R comparable](src *span.Source) *Builder[R] {
	return &Builder[R]{src: src}
}

// Checkpoint marks a recording state for Rollback.
type Checkpoint struct {
	entries int
	open    int
}

// Open records the start of a rule match at byte offset off.
func (b *Builder[R]) Open(off int) {
	b.record(off)
	b.open = append(b.open, len(b.entries))
	b.entries = append(b.entries, entry[R]{kind: entryStart, endIndex: -1, pos: off})
}

// Close records the end of the innermost open rule match at byte offset off
// and tags the whole range with rule.
func (b *Builder[R]) Close(rule R, off int) {
	b.record(off)
	if len(b.open) == 0 {
		panic("result: close without a matching open")
	}
	start := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]
	b.entries[start].endIndex = len(b.entries)
	b.entries = append(b.entries, entry[R]{kind: entryEnd, rule: rule, pos: off})
}

// Checkpoint returns a mark of the current recording state, for discarding a
// failed match attempt with Rollback.
func (b *Builder[R]) Checkpoint() Checkpoint {
	return Checkpoint{entries: len(b.entries), open: len(b.open)}
}

// Rollback discards every event recorded since cp was taken. Rolling back
// across the close of a rule that was already open at the checkpoint is a
// defect and panics.
func (b *Builder[R]) Rollback(cp Checkpoint) {
	b.mutable()
	if cp.entries > len(b.entries) || cp.open > len(b.open) {
		panic("result: rollback to a checkpoint from a later state")
	}
	// Open indices are increasing, so checking the last surviving one
	// catches any enclosing rule closed and replaced since the checkpoint.
	if cp.open > 0 && b.open[cp.open-1] >= cp.entries {
		panic("result: rollback across the close of an enclosing rule")
	}
	b.entries = b.entries[:cp.entries]
	b.open = b.open[:cp.open]
}

// Finish freezes the log and returns the root sibling iterator over every
// recorded match. Panics when a rule is still open. The builder is spent
// afterward; further recording panics.
func (b *Builder[R]) Finish() Pairs[R] {
	b.mutable()
	if len(b.open) != 0 {
		panic(fmt.Sprintf("result: finish with %d unclosed rules", len(b.open)))
	}
	b.finished = true
	q := &eventLog[R]{entries: b.entries}
	return Pairs[R]{q: q, src: b.src, lo: 0, hi: len(b.entries)}
}

// record validates an event offset: the builder must not be finished, off
// must be a codepoint boundary of the source, and events must not move
// backward.
func (b *Builder[R]) record(off int) {
	b.mutable()
	if _, ok := span.NewPosition(b.src, off); !ok {
		panic(fmt.Sprintf("result: offset %d is not a codepoint boundary of the source", off))
	}
	if n := len(b.entries); n > 0 && off < b.entries[n-1].pos {
		panic(fmt.Sprintf("result: offset %d moves backward past %d", off, b.entries[n-1].pos))
	}
}

func (b *Builder[R]) mutable() {
	if b.finished {
		panic("result: builder used after finish")
	}
}
