package span

import "unicode/utf8"

// Position is a cursor pointing at a single byte offset of a shared source.
// The offset is always a codepoint boundary, so slicing the text at a
// position is always valid.
type Position struct {
	src *Source
	pos int
}

// NewPosition returns a position at off. ok is false when off is out of
// range or falls inside a multi-byte codepoint.
func NewPosition(src *Source, off int) (Position, bool) {
	if !src.boundary(off) {
		return Position{}, false
	}
	return Position{src: src, pos: off}, true
}

// NewPositionUnchecked returns a position at off without validating it.
// The caller must guarantee that off is a codepoint boundary within src;
// an invalid offset corrupts every slice taken through the position.
// The guarantee is re-checked only in -tags pestdebug builds.
func NewPositionUnchecked(src *Source, off int) Position {
	if debugChecks && !src.boundary(off) {
		panic("span: position offset is not a codepoint boundary")
	}
	return Position{src: src, pos: off}
}

// Source returns the shared source the position points into.
func (p Position) Source() *Source {
	return p.src
}

// Offset returns the byte offset of the position.
func (p Position) Offset() int {
	return p.pos
}

// AtStart reports whether the position is at the start of the input.
func (p Position) AtStart() bool {
	return p.pos == 0
}

// AtEnd reports whether the position is at the end of the input.
func (p Position) AtEnd() bool {
	return p.pos == len(p.src.text)
}

// LineCol returns the 1-based line and column of the position. Columns count
// codepoints, not bytes.
func (p Position) LineCol() (line, col int) {
	line, col = 1, 1
	for _, r := range p.src.text[:p.pos] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// LineOf returns the full line containing the position, terminator included.
// The line after a trailing newline is the empty string.
func (p Position) LineOf() string {
	return p.src.text[p.lineStart():p.lineEnd()]
}

// Skip returns the position advanced by n codepoints. ok is false when fewer
// than n codepoints remain, in which case the position is returned unchanged.
func (p Position) Skip(n int) (Position, bool) {
	off := p.pos
	rest := p.src.text[p.pos:]
	for i := 0; i < n; i++ {
		_, size := utf8.DecodeRuneInString(rest)
		if size == 0 {
			return p, false
		}
		rest = rest[size:]
		off += size
	}
	return Position{src: p.src, pos: off}, true
}

// Span returns the span from p up to other.
// Panics when the positions point into different sources.
func (p Position) Span(other Position) Span {
	if p.src != other.src {
		panic("span: span created from positions of different sources")
	}
	return NewUnchecked(p.src, p.pos, other.pos)
}

// lineStart returns the offset just after the previous newline, or 0 when
// the position sits on the first line. A newline at the position itself
// terminates the current line and is not crossed.
func (p Position) lineStart() int {
	for i := p.pos - 1; i >= 0; i-- {
		if p.src.text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// lineEnd returns the offset just after the next newline, terminator
// included, or the end of input for an unterminated final line.
func (p Position) lineEnd() int {
	if p.AtEnd() {
		return len(p.src.text)
	}
	for i := p.pos; i < len(p.src.text); i++ {
		if p.src.text[i] == '\n' {
			return i + 1
		}
	}
	return len(p.src.text)
}
