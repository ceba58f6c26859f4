package demo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/FuelLabs/pest/pkg/result"
	"github.com/FuelLabs/pest/pkg/span"
)

// matcher walks JSON text byte by byte and records rule boundaries. It
// validates syntax but never decodes values; every recorded range is a raw
// slice of the input.
type matcher struct {
	src *span.Source
	b   *result.Builder[Rule]
	pos int
}

// document matches one value with optional surrounding whitespace and
// requires the input to end there.
func (m *matcher) document() error {
	m.ws()
	m.b.Open(m.pos)
	if err := m.value(); err != nil {
		return err
	}
	m.b.Close(Value, m.pos)
	m.ws()
	if m.pos != m.src.Len() {
		return m.errf(m.pos, "expected end of input")
	}
	return nil
}

// value dispatches on the next significant byte. It records nothing
// itself; the concrete rule does.
func (m *matcher) value() error {
	switch c := m.peek(); {
	case c == '{':
		return m.object()
	case c == '[':
		return m.array()
	case c == '"':
		return m.stringLit()
	case c == 't' || c == 'f':
		return m.boolean()
	case c == 'n':
		return m.null()
	case c == '-' || c >= '0' && c <= '9':
		return m.number()
	default:
		return m.errf(m.pos, "expected value")
	}
}

func (m *matcher) object() error {
	m.b.Open(m.pos)
	m.pos++ // '{'
	m.ws()
	if m.peek() == '}' {
		m.pos++
		m.b.Close(Object, m.pos)
		return nil
	}
	for {
		if err := m.member(); err != nil {
			return err
		}
		m.ws()
		switch m.peek() {
		case ',':
			m.pos++
			m.ws()
		case '}':
			m.pos++
			m.b.Close(Object, m.pos)
			return nil
		default:
			return m.errf(m.pos, "expected ',' or '}' in object")
		}
	}
}

// member matches a string key, a colon and a value. Its range runs from
// the first byte of the key to the last byte of the value, excluding the
// whitespace around the colon.
func (m *matcher) member() error {
	if m.peek() != '"' {
		return m.errf(m.pos, "expected string key")
	}
	m.b.Open(m.pos)
	if err := m.stringLit(); err != nil {
		return err
	}
	m.ws()
	if m.peek() != ':' {
		return m.errf(m.pos, "expected ':' after object key")
	}
	m.pos++
	m.ws()
	if err := m.value(); err != nil {
		return err
	}
	m.b.Close(Member, m.pos)
	return nil
}

func (m *matcher) array() error {
	m.b.Open(m.pos)
	m.pos++ // '['
	m.ws()
	if m.peek() == ']' {
		m.pos++
		m.b.Close(Array, m.pos)
		return nil
	}
	for {
		if err := m.value(); err != nil {
			return err
		}
		m.ws()
		switch m.peek() {
		case ',':
			m.pos++
			m.ws()
		case ']':
			m.pos++
			m.b.Close(Array, m.pos)
			return nil
		default:
			return m.errf(m.pos, "expected ',' or ']' in array")
		}
	}
}

// stringLit matches a quoted string including both quotes. Multibyte
// runes pass through byte by byte; only ASCII bytes are structural.
func (m *matcher) stringLit() error {
	start := m.pos
	m.b.Open(start)
	m.pos++ // opening '"'
	text := m.src.Text()
	for m.pos < len(text) {
		switch c := text[m.pos]; {
		case c == '"':
			m.pos++
			m.b.Close(String, m.pos)
			return nil
		case c == '\\':
			if err := m.escape(); err != nil {
				return err
			}
		case c < 0x20:
			return m.errf(m.pos, "control character in string")
		default:
			m.pos++
		}
	}
	return m.errf(start, "unterminated string")
}

func (m *matcher) escape() error {
	at := m.pos
	m.pos++ // '\'
	text := m.src.Text()
	if m.pos >= len(text) {
		return m.errf(at, "unterminated string")
	}
	switch text[m.pos] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		m.pos++
		return nil
	case 'u':
		m.pos++
		for i := 0; i < 4; i++ {
			if !isHex(m.peek()) {
				return m.errf(at, "invalid \\u escape")
			}
			m.pos++
		}
		return nil
	default:
		return m.errf(at, "invalid escape character %q", text[m.pos])
	}
}

func (m *matcher) number() error {
	start := m.pos
	m.b.Open(start)
	if m.peek() == '-' {
		m.pos++
	}
	switch c := m.peek(); {
	case c == '0':
		m.pos++
	case c >= '1' && c <= '9':
		for isDigit(m.peek()) {
			m.pos++
		}
	default:
		return m.errf(start, "invalid number")
	}
	if m.peek() == '.' {
		m.pos++
		if !isDigit(m.peek()) {
			return m.errf(start, "invalid number")
		}
		for isDigit(m.peek()) {
			m.pos++
		}
	}
	if c := m.peek(); c == 'e' || c == 'E' {
		m.pos++
		if c := m.peek(); c == '+' || c == '-' {
			m.pos++
		}
		if !isDigit(m.peek()) {
			return m.errf(start, "invalid number")
		}
		for isDigit(m.peek()) {
			m.pos++
		}
	}
	m.b.Close(Number, m.pos)
	return nil
}

func (m *matcher) boolean() error {
	m.b.Open(m.pos)
	if !m.lit("true") && !m.lit("false") {
		return m.errf(m.pos, "expected value")
	}
	m.b.Close(Bool, m.pos)
	return nil
}

func (m *matcher) null() error {
	m.b.Open(m.pos)
	if !m.lit("null") {
		return m.errf(m.pos, "expected value")
	}
	m.b.Close(Null, m.pos)
	return nil
}

// ws skips insignificant whitespace. It is never recorded.
func (m *matcher) ws() {
	text := m.src.Text()
	for m.pos < len(text) {
		switch text[m.pos] {
		case ' ', '\t', '\n', '\r':
			m.pos++
		default:
			return
		}
	}
}

// lit consumes the literal word s when it appears at the cursor.
func (m *matcher) lit(s string) bool {
	if strings.HasPrefix(m.src.Text()[m.pos:], s) {
		m.pos += len(s)
		return true
	}
	return false
}

// peek returns the byte at the cursor, or 0 at end of input.
func (m *matcher) peek() byte {
	if m.pos >= m.src.Len() {
		return 0
	}
	return m.src.Text()[m.pos]
}

// checkEncoding rejects input that is not valid UTF-8, reporting the line
// and column of the first malformed byte. Every offset the matcher records
// must be a codepoint boundary of the source, so malformed input is
// refused before matching starts.
func checkEncoding(text string) error {
	if utf8.ValidString(text) {
		return nil
	}
	at := 0
	for {
		r, size := utf8.DecodeRuneInString(text[at:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		at += size
	}
	line, col := 1, 1
	for _, r := range text[:at] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Errorf("%d:%d: input is not valid UTF-8", line, col)
}

// errf builds a syntax error carrying the 1-based line and column of the
// byte offset at. The input passed checkEncoding and the matcher only
// stops on ASCII structural bytes or at rune starts, so at is always a
// codepoint boundary.
func (m *matcher) errf(at int, format string, args ...any) error {
	line, col := span.NewPositionUnchecked(m.src, at).LineCol()
	return fmt.Errorf("%d:%d: %s", line, col, fmt.Sprintf(format, args...))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
