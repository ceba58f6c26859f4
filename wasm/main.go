//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("PestParse", js.FuncOf(parse))
	js.Global().Set("PestParseDisplay", js.FuncOf(parseDisplay))
	js.Global().Set("PestLoadDocument", js.FuncOf(loadDocument))
	js.Global().Set("PestDocumentTree", js.FuncOf(documentTree))
	js.Global().Set("PestDocumentTokens", js.FuncOf(documentTokens))
	js.Global().Set("PestCloseDocument", js.FuncOf(closeDocument))

	// Keep WASM running
	<-make(chan struct{})
}
