package result

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// pairJSON is the serialized shape of one pair: pos, rule, inner, in that
// order. inner holds the matched text for a leaf and the serialized child
// sequence otherwise.
type pairJSON struct {
	Pos   [2]int `json:"pos"`
	Rule  string `json:"rule"`
	Inner any    `json:"inner"`
}

// pairsJSON is the serialized shape of a sibling sequence: the byte range
// from the first pair's start to the last pair's end, then the pairs.
type pairsJSON struct {
	Pos   [2]int     `json:"pos"`
	Pairs []pairJSON `json:"pairs"`
}

func (p Pair[R]) jsonValue() pairJSON {
	out := pairJSON{
		Pos:  [2]int{p.q.posAt(p.start), p.q.posAt(p.end())},
		Rule: fmt.Sprintf("%v", p.Rule()),
	}
	inner := p.Inner()
	if _, ok := inner.Peek(); ok {
		out.Inner = inner.jsonValue()
	} else {
		out.Inner = p.Text()
	}
	return out
}

func (p Pairs[R]) jsonValue() pairsJSON {
	out := pairsJSON{Pairs: []pairJSON{}}
	if p.lo < p.hi {
		out.Pos = [2]int{p.q.posAt(p.lo), p.q.posAt(p.hi - 1)}
	}
	for pair := range p.All() {
		out.Pairs = append(out.Pairs, pair.jsonValue())
	}
	return out
}

// MarshalJSON implements json.Marshaler with the shape documented on
// ToJSON, compactly encoded.
func (p Pair[R]) MarshalJSON() ([]byte, error) {
	return marshalCompact(p.jsonValue())
}

// MarshalJSON implements json.Marshaler with the shape documented on
// ToJSON, compactly encoded.
func (p Pairs[R]) MarshalJSON() ([]byte, error) {
	return marshalCompact(p.jsonValue())
}

// ToJSON returns the match serialized as a two-space-indented object
// {"pos": [start, end], "rule": "<name>", "inner": X} where X is the
// matched text for a leaf and the child sequence in the ToJSON shape of
// Pairs otherwise. Rule names are rendered with %v.
func (p Pair[R]) ToJSON() string {
	return marshalIndent(p.jsonValue())
}

// ToJSON returns the remaining pairs serialized as a two-space-indented
// object {"pos": [start, end], "pairs": [...]} with each element in the
// ToJSON shape of Pair.
func (p Pairs[R]) ToJSON() string {
	return marshalIndent(p.jsonValue())
}

// marshalCompact encodes without the HTML escaping encoding/json applies by
// default; the format carries raw matched text.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func marshalIndent(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		// The shadow structure holds only strings, ints, and slices;
		// encoding them cannot fail.
		panic("result: serializing match tree: " + err.Error())
	}
	return strings.TrimRight(buf.String(), "\n")
}
