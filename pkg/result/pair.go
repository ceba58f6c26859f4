package result

import (
	"fmt"
	"strings"

	"github.com/FuelLabs/pest/pkg/span"
)

// Pair is one matched rule range over the shared event log and source text.
// It is a small comparable value: two pairs are equal exactly when they view
// the same log and the same source by pointer at the same log index, so
// pairs work as map keys and pairs from two independent parses never compare
// equal, even over identical input and rules. Copying a pair copies two
// pointers and an index, nothing more.
type Pair[R comparable] struct {
	q     *eventLog[R]
	src   *span.Source
	start int
}

// end returns the log index of the pair's matching end entry.
func (p Pair[R]) end() int {
	return p.q.endIndexOf(p.start)
}

// Rule returns the rule that produced the match.
func (p Pair[R]) Rule() R {
	return p.q.ruleAt(p.end())
}

// Text returns the matched slice of the source, without copying.
func (p Pair[R]) Text() string {
	return p.src.Text()[p.q.posAt(p.start):p.q.posAt(p.end())]
}

// Span returns the matched byte range as a span independent of the event
// log.
func (p Pair[R]) Span() span.Span {
	return span.NewUnchecked(p.src, p.q.posAt(p.start), p.q.posAt(p.end()))
}

// LineCol returns the 1-based line and column of the match start.
func (p Pair[R]) LineCol() (line, col int) {
	return p.Span().StartPos().LineCol()
}

// Input returns the shared source the pair was matched against.
func (p Pair[R]) Input() *span.Source {
	return p.src
}

// Inner returns a sibling iterator over the pair's immediate children: the
// log range strictly between this match's start and end markers.
func (p Pair[R]) Inner() Pairs[R] {
	return Pairs[R]{q: p.q, src: p.src, lo: p.start + 1, hi: p.end()}
}

// Tokens returns a flat iterator over the pair's raw events, its own
// boundary markers included.
func (p Pair[R]) Tokens() Tokens[R] {
	return Tokens[R]{q: p.q, src: p.src, lo: p.start, hi: p.end() + 1}
}

// String renders the pair as rule(start, end) for a leaf and
// rule(start, end, [child, child]) recursively otherwise, with byte offsets.
func (p Pair[R]) String() string {
	var b strings.Builder
	p.writeTo(&b)
	return b.String()
}

func (p Pair[R]) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, "%v(%d, %d", p.Rule(), p.q.posAt(p.start), p.q.posAt(p.end()))
	inner := p.Inner()
	if _, ok := inner.Peek(); ok {
		b.WriteString(", [")
		first := true
		for child := range inner.All() {
			if !first {
				b.WriteString(", ")
			}
			first = false
			child.writeTo(b)
		}
		b.WriteString("]")
	}
	b.WriteString(")")
}
