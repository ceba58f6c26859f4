// Package result turns the flat event log recorded during matching into
// navigable, zero-copy views of the match tree. A Builder records
// rule-start/rule-end events while an engine matches input; the resulting
// log is frozen and shared by pointer between every Pair, Pairs, FlatPairs,
// and Tokens view derived from it. No view ever materializes a tree or
// copies text: navigation is index arithmetic over the log, and every
// textual slice indexes the shared source directly.
package result

import "fmt"

// entryKind discriminates the two event-log entry variants.
type entryKind uint8

const (
	entryStart entryKind = iota
	entryEnd
)

// entry is one event-log record. A start entry carries the index of its
// matching end entry, which is what makes skipping a whole subtree a single
// jump during sibling iteration. An end entry carries the rule that matched.
// Both carry the byte offset the event was recorded at.
type entry[R comparable] struct {
	kind     entryKind
	endIndex int // start entries: index of the matching end entry
	rule     R   // end entries: rule that closed here
	pos      int // byte offset into the source
}

// eventLog is the frozen event sequence of one parse. Views hold it by
// pointer, and that pointer is their identity anchor: views of two
// independent parses never compare equal, whatever their content.
type eventLog[R comparable] struct {
	entries []entry[R]
}

// endIndexOf resolves the matching end index of the start entry at i.
// Finding another variant at i means the producer broke the bracket
// invariant; that is a defect, never a recoverable condition.
func (q *eventLog[R]) endIndexOf(i int) int {
	e := &q.entries[i]
	if e.kind != entryStart {
		panic(fmt.Sprintf("result: entry %d is not a start marker; event log is malformed", i))
	}
	return e.endIndex
}

// ruleAt reads the rule of the end entry at i. Same defect contract as
// endIndexOf.
func (q *eventLog[R]) ruleAt(i int) R {
	e := &q.entries[i]
	if e.kind != entryEnd {
		panic(fmt.Sprintf("result: entry %d is not an end marker; event log is malformed", i))
	}
	return e.rule
}

// posAt returns the byte offset of the entry at i, either variant.
func (q *eventLog[R]) posAt(i int) int {
	return q.entries[i].pos
}
