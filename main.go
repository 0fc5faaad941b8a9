package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/lisgo-lang/lisgo/consts"
	"github.com/lisgo-lang/lisgo/repl"
	"github.com/lisgo-lang/lisgo/utils"
)

const usage = `lisgo - a tiny lisp that compiles to Go

Usage:
  lisgo run <file.lg>      compile, then build & run via "go run"
  lisgo compile <file.lg>  compile to a sidecar .go file
  lisgo ast <file.lg>      dump the parsed AST as JSON
  lisgo repl               start the interactive REPL (default)
  lisgo version            print the version
  lisgo -h | --help        print this help
`

func main() {
	if len(os.Args) < 2 {
		startRepl()
		return
	}
	switch os.Args[1] {
	case "run":
		runFile(fileArg())
	case "compile":
		compileFile(fileArg())
	case "ast":
		writeAst(fileArg())
	case "repl":
		startRepl()
	case "version":
		fmt.Println(consts.VERSION)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Print(usage)
		os.Exit(1)
	}
}

func fileArg() string {
	if len(os.Args) < 3 {
		fmt.Print(usage)
		os.Exit(1)
	}
	return os.Args[2]
}

func startRepl() {
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go utils.CheckUpgrade(wg)
	repl.Repl(wg)
}
