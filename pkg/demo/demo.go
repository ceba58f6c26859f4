// Package demo matches JSON text with a hand-written recursive-descent
// engine that records every rule through result.Builder. It stands in for
// a generated parser so the CLI and the playground have a real grammar to
// build trees from.
package demo

import (
	"fmt"

	"github.com/FuelLabs/pest/pkg/result"
	"github.com/FuelLabs/pest/pkg/span"
)

// Rule identifies one grammar rule of the demo JSON grammar.
type Rule uint8

const (
	Value Rule = iota
	Object
	Member
	Array
	String
	Number
	Bool
	Null
	ruleCount // sentinel
)

var ruleNames = [ruleCount]string{
	Value:  "value",
	Object: "object",
	Member: "member",
	Array:  "array",
	String: "string",
	Number: "number",
	Bool:   "bool",
	Null:   "null",
}

func (r Rule) String() string {
	if r < ruleCount {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", r)
}

// Parse matches text as a single JSON document and returns the match tree
// along with the source it slices. The tree has one root Value pair
// spanning the document without its surrounding whitespace. Input that is
// not valid UTF-8 is rejected before matching starts; syntax errors carry
// the 1-based line:col of the offending input.
func Parse(text string) (result.Pairs[Rule], *span.Source, error) {
	if err := checkEncoding(text); err != nil {
		return result.Pairs[Rule]{}, nil, err
	}
	src := span.NewSource(text)
	m := &matcher{src: src, b: result.NewBuilder[Rule](src)}
	if err := m.document(); err != nil {
		return result.Pairs[Rule]{}, nil, err
	}
	return m.b.Finish(), src, nil
}
