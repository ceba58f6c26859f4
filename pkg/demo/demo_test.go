package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuelLabs/pest/pkg/result"
)

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "number",
			input: "42",
			want:  "[value(0, 2, [number(0, 2)])]",
		},
		{
			name:  "negative exponent number",
			input: " -3.5e2 ",
			want:  "[value(1, 7, [number(1, 7)])]",
		},
		{
			name:  "true",
			input: "true",
			want:  "[value(0, 4, [bool(0, 4)])]",
		},
		{
			name:  "false",
			input: "false",
			want:  "[value(0, 5, [bool(0, 5)])]",
		},
		{
			name:  "null",
			input: "null",
			want:  "[value(0, 4, [null(0, 4)])]",
		},
		{
			name:  "string",
			input: `"hi"`,
			want:  "[value(0, 4, [string(0, 4)])]",
		},
		{
			name:  "string with escape",
			input: `"a\nb"`,
			want:  "[value(0, 6, [string(0, 6)])]",
		},
		{
			name:  "string with unicode escape",
			input: `"\u00e9"`,
			want:  "[value(0, 8, [string(0, 8)])]",
		},
		{
			name:  "empty object",
			input: "{}",
			want:  "[value(0, 2, [object(0, 2)])]",
		},
		{
			name:  "empty array",
			input: "[ ]",
			want:  "[value(0, 3, [array(0, 3)])]",
		},
		{
			name:  "object with one member",
			input: `{"a": 1}`,
			want:  "[value(0, 8, [object(0, 8, [member(1, 7, [string(1, 4), number(6, 7)])])])]",
		},
		{
			name:  "nested array",
			input: "[1, [2]]",
			want:  "[value(0, 8, [array(0, 8, [number(1, 2), array(4, 7, [number(5, 6)])])])]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pairs, src, err := Parse(tc.input)
			require.NoError(t, err)
			require.NotNil(t, src)
			assert.Equal(t, tc.want, pairs.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: "1:1: expected value",
		},
		{
			name:    "lone brace",
			input:   "{",
			wantErr: "1:2: expected string key",
		},
		{
			name:    "missing colon",
			input:   `{"a"}`,
			wantErr: "1:5: expected ':' after object key",
		},
		{
			name:    "missing member value",
			input:   `{"a": }`,
			wantErr: "1:7: expected value",
		},
		{
			name:    "trailing comma in array",
			input:   "[1, ]",
			wantErr: "1:5: expected value",
		},
		{
			name:    "missing comma in array",
			input:   "[1 2]",
			wantErr: "1:4: expected ',' or ']' in array",
		},
		{
			name:    "missing comma in object",
			input:   `{"a": 1 "b": 2}`,
			wantErr: "1:9: expected ',' or '}' in object",
		},
		{
			name:    "unterminated string",
			input:   `"abc`,
			wantErr: "1:1: unterminated string",
		},
		{
			name:    "invalid escape",
			input:   `"a\x"`,
			wantErr: "1:3: invalid escape character 'x'",
		},
		{
			name:    "short unicode escape",
			input:   `"\u12"`,
			wantErr: "1:2: invalid \\u escape",
		},
		{
			name:    "control character in string",
			input:   "\"a\tb\"",
			wantErr: "1:3: control character in string",
		},
		{
			name:    "bare minus",
			input:   "-",
			wantErr: "1:1: invalid number",
		},
		{
			name:    "fraction without digits",
			input:   "1.",
			wantErr: "1:1: invalid number",
		},
		{
			name:    "misspelled literal",
			input:   "tru",
			wantErr: "1:1: expected value",
		},
		{
			name:    "trailing garbage",
			input:   "1 2",
			wantErr: "1:3: expected end of input",
		},
		{
			name:    "error on second line",
			input:   "{\n  \"a\": truu\n}",
			wantErr: "2:8: expected value",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "continuation byte at start",
			input:   "\x80",
			wantErr: "1:1: input is not valid UTF-8",
		},
		{
			name:    "continuation byte after a value",
			input:   "1\x80",
			wantErr: "1:2: input is not valid UTF-8",
		},
		{
			name:    "invalid byte inside an array",
			input:   "[\xff]",
			wantErr: "1:2: input is not valid UTF-8",
		},
		{
			name:    "truncated rune on second line",
			input:   "{\n  \xc3}",
			wantErr: "2:3: input is not valid UTF-8",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, _, err = Parse(tc.input) })
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}

func TestParseObjectMembers(t *testing.T) {
	pairs, _, err := Parse(`{"name": "pest", "ok": true}`)
	require.NoError(t, err)

	root, ok := pairs.Peek()
	require.True(t, ok, "document must produce a root pair")
	assert.Equal(t, Value, root.Rule())

	obj, ok := root.Inner().Peek()
	require.True(t, ok)
	assert.Equal(t, Object, obj.Rule())

	got := map[string]Rule{}
	for member := range obj.Inner().All() {
		require.Equal(t, Member, member.Rule())
		inner := member.Inner()
		key, ok := inner.Next()
		require.True(t, ok, "member must have a key")
		val, ok := inner.Next()
		require.True(t, ok, "member must have a value")
		assert.Equal(t, String, key.Rule())
		got[key.Text()] = val.Rule()
	}
	assert.Equal(t, map[string]Rule{`"name"`: String, `"ok"`: Bool}, got,
		"keys keep their quotes; text is the raw input slice")
}

func TestParseMultibyte(t *testing.T) {
	pairs, _, err := Parse(`{"é": "ü"}`)
	require.NoError(t, err)

	var strs []result.Pair[Rule]
	for p := range pairs.Flatten().All() {
		if p.Rule() == String {
			strs = append(strs, p)
		}
	}
	require.Len(t, strs, 2)

	assert.Equal(t, `"é"`, strs[0].Text())
	assert.Equal(t, `"ü"`, strs[1].Text())

	sp := strs[1].Span()
	assert.Equal(t, 7, sp.Start())
	assert.Equal(t, 11, sp.End())
	line, col := strs[1].LineCol()
	assert.Equal(t, 1, line)
	assert.Equal(t, 7, col, "column counts runes, not bytes")
}

func TestParseTokens(t *testing.T) {
	pairs, _, err := Parse("[true]")
	require.NoError(t, err)

	type event struct {
		kind result.TokenKind
		rule Rule
		off  int
	}
	var got []event
	for tok := range pairs.Tokens().All() {
		got = append(got, event{kind: tok.Kind, rule: tok.Rule, off: tok.Pos.Offset()})
	}

	want := []event{
		{result.TokenStart, Value, 0},
		{result.TokenStart, Array, 0},
		{result.TokenStart, Bool, 1},
		{result.TokenEnd, Bool, 5},
		{result.TokenEnd, Array, 6},
		{result.TokenEnd, Value, 6},
	}
	assert.Equal(t, want, got)
}

func TestParseSpanMatchesText(t *testing.T) {
	pairs, _, err := Parse(`{"a": [1, {"b": null}], "c": "x"}`)
	require.NoError(t, err)

	count := 0
	for p := range pairs.Flatten().All() {
		count++
		assert.Equal(t, p.Text(), p.Span().Text())
	}
	assert.Greater(t, count, 8, "flatten must visit every rule in the tree")
}

func TestRuleString(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{Value, "value"},
		{Object, "object"},
		{Member, "member"},
		{Array, "array"},
		{String, "string"},
		{Number, "number"},
		{Bool, "bool"},
		{Null, "null"},
		{Rule(42), "Rule(42)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.rule.String())
	}
}
