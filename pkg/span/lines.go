package span

import "iter"

// Lines iterates the lines of the source that a span at least partially
// covers, terminators included. The first and last yielded lines may extend
// beyond the span when its boundaries fall mid-line. The sequence is finite
// and not restartable.
type Lines struct {
	span Span
	pos  int
}

// Lines returns an iterator over the lines the span covers.
func (s Span) Lines() *Lines {
	return &Lines{span: s, pos: s.start}
}

// Next returns the next covered line. ok is false once the cursor has moved
// past the span's end or reached the end of input.
func (l *Lines) Next() (line string, ok bool) {
	if l.pos > l.span.end {
		return "", false
	}
	p, ok := NewPosition(l.span.src, l.pos)
	if !ok || p.AtEnd() {
		return "", false
	}
	start, end := p.lineStart(), p.lineEnd()
	l.pos = end
	return l.span.src.text[start:end], true
}

// All returns a single-use range iterator over the remaining lines.
func (l *Lines) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, ok := l.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}
