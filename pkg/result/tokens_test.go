package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensSequence(t *testing.T) {
	a := firstPair(t, parseABC())

	type event struct {
		kind TokenKind
		rule testRule
		off  int
	}
	var got []event
	for tok := range a.Tokens().All() {
		got = append(got, event{kind: tok.Kind, rule: tok.Rule, off: tok.Pos.Offset()})
	}

	want := []event{
		{kind: TokenStart, rule: ruleA, off: 0},
		{kind: TokenStart, rule: ruleB, off: 1},
		{kind: TokenEnd, rule: ruleB, off: 2},
		{kind: TokenEnd, rule: ruleA, off: 3},
	}
	assert.Equal(t, want, got, "raw events must appear in recording order")
}

func TestTokensStartCarriesClosingRule(t *testing.T) {
	// The log stores the rule on the end marker only; a start token must
	// still report it.
	a := firstPair(t, parseABC())

	tokens := a.Tokens()
	first, ok := tokens.Next()
	require.True(t, ok)
	assert.Equal(t, TokenStart, first.Kind)
	assert.Equal(t, ruleA, first.Rule)
	assert.True(t, first.Pos.AtStart())
}

func TestTokensLen(t *testing.T) {
	a := firstPair(t, parseABC())

	tokens := a.Tokens()
	assert.Equal(t, 4, tokens.Len())

	_, ok := tokens.Next()
	require.True(t, ok)
	assert.Equal(t, 3, tokens.Len(), "len must shrink as events are consumed")

	for range tokens.All() {
	}
	assert.Equal(t, 3, tokens.Len(), "ranging must not consume the receiver")

	for tokens.Len() > 0 {
		_, ok := tokens.Next()
		require.True(t, ok)
	}
	_, ok = tokens.Next()
	assert.False(t, ok)
}

func TestTokensNestingBlind(t *testing.T) {
	// Unlike sibling iteration, the flat event stream walks straight
	// through nested subtrees.
	c := firstPair(t, parseNested())

	var rules []testRule
	for tok := range c.Inner().Tokens().All() {
		rules = append(rules, tok.Rule)
	}
	assert.Equal(t, []testRule{ruleA, ruleB, ruleB, ruleA, ruleB, ruleB}, rules)
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "start", TokenStart.String())
	assert.Equal(t, "end", TokenEnd.String())
	assert.Equal(t, "TokenKind(9)", TokenKind(9).String())
}
