package main

import (
	"os"

	"github.com/lisgo-lang/lisgo/compiler/parser"
	. "github.com/lisgo-lang/lisgo/json"
	"github.com/lisgo-lang/lisgo/term"
)

// writeAst parses source and dumps the AST to <source>.ast.json.
func writeAst(source string) {
	data, err := os.ReadFile(source)
	if err != nil {
		term.Fatal("[ast] %v", err)
	}

	node, err := parser.Parse(string(data), source)
	if err != nil {
		term.Fatal("[ast] %v", err)
	}

	j, err := Json.MarshalIndent(node, "", "  ")
	if err != nil {
		term.Fatal("[ast] %v", err)
	}

	if err := os.WriteFile(source+".ast.json", j, 0644); err != nil {
		term.Fatal("[ast] %v", err)
	}
}
