// Package pest provides the result layer of a PEG parser: the match tree
// a parser records while it runs, kept as lightweight views over the
// original input.
//
// A parser reports one start and one end token per matched rule through a
// Builder. The finished log is exposed as Pairs, a sequence of sibling
// matches that can be walked, sliced, and serialized without copying any
// input text.
//
// # Recording Matches
//
// Drive a Builder with the rule boundaries the parser finds:
//
//	src := pest.NewSource("ab")
//	b := pest.NewBuilder[Rule](src)
//	b.Open(0)          // word starts at offset 0
//	b.Open(0)
//	b.Close(Letter, 1) // "a"
//	b.Open(1)
//	b.Close(Letter, 2) // "b"
//	b.Close(Word, 2)
//	pairs := b.Finish()
//
// # Walking the Tree
//
// Each Pair knows its rule, the text it matched, and its inner pairs:
//
//	for p := range pairs.All() {
//	    fmt.Printf("%v matched %q\n", p.Rule(), p.Text())
//	    for c := range p.Inner().All() {
//	        fmt.Printf("  inner: %v\n", c.Rule())
//	    }
//	}
//
// The pkg/demo package wires a small JSON grammar through the builder, and
// the pest command renders its trees; use them as a template for hooking
// up a real parser.
package pest

import (
	"github.com/FuelLabs/pest/pkg/result"
	"github.com/FuelLabs/pest/pkg/span"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/FuelLabs/pest" without subpackages.
type (
	// Source is an input string shared by everything derived from it.
	Source = span.Source

	// Position is a byte offset into a source, always on a rune boundary.
	Position = span.Position

	// Span is a half-open byte range of a source.
	Span = span.Span

	// Lines iterates over the full lines a span touches.
	Lines = span.Lines

	// Builder records rule boundaries while a parser runs.
	Builder[R comparable] = result.Builder[R]

	// Checkpoint marks a builder state that Rollback can restore.
	Checkpoint = result.Checkpoint

	// Pair is one matched rule: its name, its span, and its inner pairs.
	Pair[R comparable] = result.Pair[R]

	// Pairs is a sequence of sibling matches.
	Pairs[R comparable] = result.Pairs[R]

	// FlatPairs iterates over every match in a tree in document order.
	FlatPairs[R comparable] = result.FlatPairs[R]

	// Tokens is the flat start/end token stream of a match tree.
	Tokens[R comparable] = result.Tokens[R]

	// Token is one start or end boundary of a matched rule.
	Token[R comparable] = result.Token[R]

	// TokenKind distinguishes start tokens from end tokens.
	TokenKind = result.TokenKind
)

// Re-export token kind constants.
const (
	TokenStart = result.TokenStart
	TokenEnd   = result.TokenEnd
)

// NewSource wraps text for parsing. Everything the result layer hands out
// borrows from the returned source instead of copying text.
func NewSource(text string) *Source {
	return span.NewSource(text)
}

// NewBuilder returns an empty builder recording matches over src.
func NewBuilder[R comparable](src *Source) *Builder[R] {
	return result.NewBuilder[R](src)
}

// NewSpan returns the byte range [start, end) of src. The second result
// reports whether the range lies within src on rune boundaries.
func NewSpan(src *Source, start, end int) (Span, bool) {
	return span.New(src, start, end)
}

// NewPosition returns the position at offset in src. The second result
// reports whether offset lies within src on a rune boundary.
func NewPosition(src *Source, offset int) (Position, bool) {
	return span.NewPosition(src, offset)
}
