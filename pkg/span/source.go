package span

import "unicode/utf8"

// Source holds the input text for one parse. Every Position, Span, and
// parse-result view derived from the same parse shares one Source by pointer,
// so slicing never copies the text and identity comparisons reduce to a
// pointer check. The text is never mutated after construction.
type Source struct {
	text string
}

// NewSource wraps text in a shared source handle.
func NewSource(text string) *Source {
	return &Source{text: text}
}

// Text returns the full input text.
func (s *Source) Text() string {
	return s.text
}

// Len returns the input length in bytes.
func (s *Source) Len() int {
	return len(s.text)
}

// Start returns a position at the beginning of the input.
func (s *Source) Start() Position {
	return Position{src: s, pos: 0}
}

// End returns a position at the end of the input.
func (s *Source) End() Position {
	return Position{src: s, pos: len(s.text)}
}

// boundary reports whether off is a valid slicing offset: inside [0, len]
// and not in the middle of a multi-byte codepoint.
func (s *Source) boundary(off int) bool {
	if off < 0 || off > len(s.text) {
		return false
	}
	return off == len(s.text) || utf8.RuneStart(s.text[off])
}
