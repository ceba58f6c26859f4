package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name string
		text string
		off  int
		ok   bool
	}{
		{
			name: "start of input",
			text: "abc",
			off:  0,
			ok:   true,
		},
		{
			name: "end of input",
			text: "abc",
			off:  3,
			ok:   true,
		},
		{
			name: "empty input",
			text: "",
			off:  0,
			ok:   true,
		},
		{
			name: "negative offset",
			text: "abc",
			off:  -1,
			ok:   false,
		},
		{
			name: "past end of input",
			text: "abc",
			off:  4,
			ok:   false,
		},
		{
			name: "inside two-byte codepoint",
			text: "héllo", // é is bytes 1-2
			off:  2,
			ok:   false,
		},
		{
			name: "after two-byte codepoint",
			text: "héllo",
			off:  3,
			ok:   true,
		},
		{
			name: "inside four-byte codepoint",
			text: "a\U0001F600b", // emoji is bytes 1-4
			off:  3,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(tt.text)
			p, ok := NewPosition(src, tt.off)

			assert.Equal(t, tt.ok, ok, "validity mismatch")
			if ok {
				assert.Equal(t, tt.off, p.Offset(), "offset mismatch")
				assert.Same(t, src, p.Source(), "source handle mismatch")
			}
		})
	}
}

func TestPositionAtStartAtEnd(t *testing.T) {
	src := NewSource("ab")

	start := src.Start()
	assert.True(t, start.AtStart())
	assert.False(t, start.AtEnd())

	end := src.End()
	assert.False(t, end.AtStart())
	assert.True(t, end.AtEnd())
	assert.Equal(t, 2, end.Offset())

	// On empty input the single valid position is both start and end.
	empty := NewSource("").Start()
	assert.True(t, empty.AtStart())
	assert.True(t, empty.AtEnd())
}

func TestPositionLineCol(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		off      int
		wantLine int
		wantCol  int
	}{
		{
			name:     "start of input",
			text:     "abc\ndef",
			off:      0,
			wantLine: 1,
			wantCol:  1,
		},
		{
			name:     "middle of first line",
			text:     "abc\ndef",
			off:      2,
			wantLine: 1,
			wantCol:  3,
		},
		{
			name:     "on the newline",
			text:     "abc\ndef",
			off:      3,
			wantLine: 1,
			wantCol:  4,
		},
		{
			name:     "start of second line",
			text:     "abc\ndef",
			off:      4,
			wantLine: 2,
			wantCol:  1,
		},
		{
			name:     "end of input",
			text:     "abc\ndef",
			off:      7,
			wantLine: 2,
			wantCol:  4,
		},
		{
			name:     "blank line",
			text:     "a\n\nb",
			off:      2,
			wantLine: 2,
			wantCol:  1,
		},
		{
			name:     "columns count codepoints not bytes",
			text:     "héllo\nwörld",
			off:      10, // after 'w' and the two-byte ö
			wantLine: 2,
			wantCol:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := NewPosition(NewSource(tt.text), tt.off)
			require.True(t, ok, "offset must be valid")

			line, col := p.LineCol()
			assert.Equal(t, tt.wantLine, line, "line mismatch")
			assert.Equal(t, tt.wantCol, col, "column mismatch")
		})
	}
}

func TestPositionLineOf(t *testing.T) {
	tests := []struct {
		name string
		text string
		off  int
		want string
	}{
		{
			name: "first line includes terminator",
			text: "abc\ndef\nghi",
			off:  0,
			want: "abc\n",
		},
		{
			name: "middle line",
			text: "abc\ndef\nghi",
			off:  5,
			want: "def\n",
		},
		{
			name: "position on the newline itself",
			text: "abc\ndef\nghi",
			off:  3,
			want: "abc\n",
		},
		{
			name: "unterminated final line",
			text: "abc\ndef\nghi",
			off:  9,
			want: "ghi",
		},
		{
			name: "end of input",
			text: "abc\ndef\nghi",
			off:  11,
			want: "ghi",
		},
		{
			name: "after trailing newline",
			text: "abc\n",
			off:  4,
			want: "",
		},
		{
			name: "empty input",
			text: "",
			off:  0,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := NewPosition(NewSource(tt.text), tt.off)
			require.True(t, ok, "offset must be valid")

			assert.Equal(t, tt.want, p.LineOf(), "line content mismatch")
		})
	}
}

func TestPositionSkip(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		off     int
		n       int
		wantOff int
		wantOK  bool
	}{
		{
			name:    "skip ascii",
			text:    "abcde",
			off:     0,
			n:       3,
			wantOff: 3,
			wantOK:  true,
		},
		{
			name:    "skip zero",
			text:    "abcde",
			off:     2,
			n:       0,
			wantOff: 2,
			wantOK:  true,
		},
		{
			name:    "skip to exact end",
			text:    "abc",
			off:     1,
			n:       2,
			wantOff: 3,
			wantOK:  true,
		},
		{
			name:    "skip counts codepoints",
			text:    "héllo",
			off:     0,
			n:       2,
			wantOff: 3, // h is one byte, é is two
			wantOK:  true,
		},
		{
			name:    "skip past end stays put",
			text:    "abc",
			off:     1,
			n:       5,
			wantOff: 1,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := NewPosition(NewSource(tt.text), tt.off)
			require.True(t, ok, "offset must be valid")

			got, ok := p.Skip(tt.n)
			assert.Equal(t, tt.wantOK, ok, "skip result mismatch")
			assert.Equal(t, tt.wantOff, got.Offset(), "offset mismatch")
		})
	}
}

func TestPositionSpan(t *testing.T) {
	src := NewSource("abcdef")
	start := NewPositionUnchecked(src, 1)
	end := NewPositionUnchecked(src, 4)

	s := start.Span(end)
	assert.Equal(t, 1, s.Start())
	assert.Equal(t, 4, s.End())
	assert.Equal(t, "bcd", s.Text())
}

func TestPositionSpanDifferentSources(t *testing.T) {
	a := NewSource("abc").Start()
	b := NewSource("abc").Start()

	assert.Panics(t, func() { a.Span(b) }, "positions of different sources must not form a span")
}
