package pest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordRule uint8

const (
	word wordRule = iota
	letter
)

func (r wordRule) String() string {
	if r == word {
		return "word"
	}
	return "letter"
}

func buildWord(t *testing.T, text string) Pairs[wordRule] {
	t.Helper()

	src := NewSource(text)
	b := NewBuilder[wordRule](src)
	b.Open(0)
	for i := range len(text) {
		b.Open(i)
		b.Close(letter, i+1)
	}
	b.Close(word, len(text))
	return b.Finish()
}

func TestBuildAndWalk(t *testing.T) {
	pairs := buildWord(t, "ab")

	root, ok := pairs.Peek()
	require.True(t, ok)
	assert.Equal(t, word, root.Rule())
	assert.Equal(t, "ab", root.Text())

	var texts []string
	for c := range root.Inner().All() {
		assert.Equal(t, letter, c.Rule())
		texts = append(texts, c.Text())
	}
	assert.Equal(t, []string{"a", "b"}, texts)

	assert.Equal(t, "[word(0, 2, [letter(0, 1), letter(1, 2)])]", pairs.String())
	assert.Equal(t, 6, pairs.Tokens().Len())
}

func TestNewSpan(t *testing.T) {
	src := NewSource("hello")

	sp, ok := NewSpan(src, 1, 4)
	require.True(t, ok)
	assert.Equal(t, "ell", sp.Text())

	_, ok = NewSpan(src, 3, 9)
	assert.False(t, ok)
}

func TestNewPosition(t *testing.T) {
	src := NewSource("a\nb")

	pos, ok := NewPosition(src, 2)
	require.True(t, ok)
	line, col := pos.LineCol()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	_, ok = NewPosition(src, 9)
	assert.False(t, ok)
}

func TestSerializeTree(t *testing.T) {
	pairs := buildWord(t, "ab")

	data, err := pairs.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rule":"word"`)
	assert.Contains(t, string(data), `"inner":"a"`)
}
