//go:build wasm

package main

import (
	"encoding/json"
	"sync"
	"syscall/js"

	"github.com/FuelLabs/pest/pkg/demo"
	"github.com/FuelLabs/pest/pkg/result"
)

// document is a parsed input kept alive for repeated queries.
type document struct {
	pairs result.Pairs[demo.Rule]
}

var (
	documents   = make(map[int]*document)
	documentsMu sync.RWMutex
	nextID      int
)

// parse parses a document and returns its match tree as JSON.
// JS: PestParse(text) -> JSON tree or error
func parse(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "text argument required"}
	}

	pairs, _, err := demo.Parse(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": "parse failed: " + err.Error()}
	}

	data, err := pairs.MarshalJSON()
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal tree: " + err.Error()}
	}

	return string(data)
}

// parseDisplay parses a document and returns its match tree in display form.
// JS: PestParseDisplay(text) -> display string or error
func parseDisplay(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "text argument required"}
	}

	pairs, _, err := demo.Parse(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": "parse failed: " + err.Error()}
	}

	return pairs.String()
}

// loadDocument parses a document and keeps it for repeated queries.
// JS: PestLoadDocument(text) -> handle (int) or error
func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "text argument required"}
	}

	pairs, _, err := demo.Parse(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": "parse failed: " + err.Error()}
	}

	// Register document
	documentsMu.Lock()
	id := nextID
	nextID++
	documents[id] = &document{pairs: pairs}
	documentsMu.Unlock()

	return map[string]interface{}{"handle": id}
}

// documentTree returns the match tree of a loaded document as JSON.
// JS: PestDocumentTree(handle) -> JSON tree or error
func documentTree(this js.Value, args []js.Value) interface{} {
	doc, errResult := lookupDocument(args)
	if doc == nil {
		return errResult
	}

	data, err := doc.pairs.MarshalJSON()
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal tree: " + err.Error()}
	}

	return string(data)
}

// tokenJSON is the serialized shape of one token.
type tokenJSON struct {
	Kind   string `json:"kind"`
	Rule   string `json:"rule"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
}

// documentTokens returns the token stream of a loaded document as JSON.
// JS: PestDocumentTokens(handle) -> JSON token array or error
func documentTokens(this js.Value, args []js.Value) interface{} {
	doc, errResult := lookupDocument(args)
	if doc == nil {
		return errResult
	}

	tokens := []tokenJSON{}
	for tok := range doc.pairs.Tokens().All() {
		kind := "start"
		if tok.Kind == result.TokenEnd {
			kind = "end"
		}
		line, col := tok.Pos.LineCol()
		tokens = append(tokens, tokenJSON{
			Kind:   kind,
			Rule:   tok.Rule.String(),
			Offset: tok.Pos.Offset(),
			Line:   line,
			Col:    col,
		})
	}

	data, err := json.Marshal(tokens)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal tokens: " + err.Error()}
	}

	return string(data)
}

// closeDocument releases a loaded document.
// JS: PestCloseDocument(handle)
func closeDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	documentsMu.Lock()
	_, ok := documents[handle]
	if ok {
		delete(documents, handle)
	}
	documentsMu.Unlock()

	if !ok {
		return map[string]interface{}{"error": "invalid document handle"}
	}

	return nil
}

// lookupDocument resolves the handle argument, returning the error value to
// hand back to JS when it cannot.
func lookupDocument(args []js.Value) (*document, interface{}) {
	if len(args) < 1 {
		return nil, map[string]interface{}{"error": "handle argument required"}
	}

	documentsMu.RLock()
	doc, ok := documents[args[0].Int()]
	documentsMu.RUnlock()

	if !ok {
		return nil, map[string]interface{}{"error": "invalid document handle"}
	}
	return doc, nil
}
