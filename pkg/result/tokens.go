package result

import (
	"fmt"
	"iter"

	"github.com/FuelLabs/pest/pkg/span"
)

// TokenKind discriminates the two raw event kinds.
type TokenKind uint8

const (
	// TokenStart opens a rule match.
	TokenStart TokenKind = iota
	// TokenEnd closes a rule match.
	TokenEnd
)

// String returns "start" or "end".
func (k TokenKind) String() string {
	switch k {
	case TokenStart:
		return "start"
	case TokenEnd:
		return "end"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// Token is one raw rule-boundary event: the rule it belongs to and the
// cursor position it was recorded at.
type Token[R comparable] struct {
	Kind TokenKind
	Rule R
	Pos  span.Position
}

// Tokens iterates the raw events of a log range in recording order, blind
// to nesting.
type Tokens[R comparable] struct {
	q      *eventLog[R]
	src    *span.Source
	lo, hi int
}

// Len returns the number of events remaining.
func (t Tokens[R]) Len() int {
	return t.hi - t.lo
}

// Next returns the next raw event. ok is false once the range is exhausted.
// A start event reports the rule of its matching end entry, since the log
// stores the rule only on the closing side.
func (t *Tokens[R]) Next() (Token[R], bool) {
	if t.lo >= t.hi {
		return Token[R]{}, false
	}
	e := &t.q.entries[t.lo]
	tok := Token[R]{Pos: span.NewPositionUnchecked(t.src, e.pos)}
	if e.kind == entryStart {
		tok.Kind = TokenStart
		tok.Rule = t.q.ruleAt(e.endIndex)
	} else {
		tok.Kind = TokenEnd
		tok.Rule = e.rule
	}
	t.lo++
	return tok, true
}

// All returns a range iterator over the remaining events. The receiver is
// not consumed; every range restarts from the receiver's current state.
func (t Tokens[R]) All() iter.Seq[Token[R]] {
	return func(yield func(Token[R]) bool) {
		it := t
		for {
			tok, ok := it.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
