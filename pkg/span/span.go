// Package span provides zero-copy byte-offset views over immutable parse
// input: a shared Source handle, single-offset cursor Positions, half-open
// Spans, and lazy line decomposition. Offsets are always codepoint
// boundaries, established either by the checked constructors or by the
// caller's contract on the unchecked ones.
package span

// Span is the byte range [start, end) of a shared source text. Spans are
// small comparable values: two spans are equal exactly when they share the
// same source by pointer and cover the same offsets. Content-equal spans
// over two different sources are not equal.
type Span struct {
	src   *Source
	start int
	end   int
}

// New returns the span [start, end) of src. ok is false when start > end,
// either offset is out of range, or either offset falls inside a multi-byte
// codepoint.
func New(src *Source, start, end int) (Span, bool) {
	if start > end || !src.boundary(start) || !src.boundary(end) {
		return Span{}, false
	}
	return Span{src: src, start: start, end: end}, true
}

// NewUnchecked returns the span [start, end) of src without validating the
// range. The caller must guarantee start <= end and that both offsets are
// codepoint boundaries within src. The guarantee is re-checked only in
// -tags pestdebug builds.
func NewUnchecked(src *Source, start, end int) Span {
	if debugChecks {
		if start > end || !src.boundary(start) || !src.boundary(end) {
			panic("span: invalid span range")
		}
	}
	return Span{src: src, start: start, end: end}
}

// Source returns the shared source the span points into.
func (s Span) Source() *Source {
	return s.src
}

// Start returns the span's starting byte offset.
func (s Span) Start() int {
	return s.start
}

// End returns the span's past-the-end byte offset.
func (s Span) End() int {
	return s.end
}

// StartPos returns the span's start as a cursor position.
func (s Span) StartPos() Position {
	return Position{src: s.src, pos: s.start}
}

// EndPos returns the span's end as a cursor position.
func (s Span) EndPos() Position {
	return Position{src: s.src, pos: s.end}
}

// Split decomposes the span into its two boundary positions.
func (s Span) Split() (Position, Position) {
	return s.StartPos(), s.EndPos()
}

// Text returns the text covered by the span, sliced from the shared source
// without copying.
func (s Span) Text() string {
	return s.src.text[s.start:s.end]
}
