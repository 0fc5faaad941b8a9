package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/lisgo-lang/lisgo/compiler"
	"github.com/lisgo-lang/lisgo/config"
	"github.com/lisgo-lang/lisgo/consts"
	"github.com/lisgo-lang/lisgo/logger"
	"github.com/lisgo-lang/lisgo/term"
	"github.com/lisgo-lang/lisgo/utils"
)

// compileFile compiles source and writes the sidecar .go file next to it,
// returning the sidecar path.
func compileFile(source string) string {
	if !utils.Exist(source) {
		term.Fatal("[compile] file not found: %s", source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		term.Fatal("[compile] can't read file: %v", err)
	}

	code, err := compiler.Compile(string(data), source)
	if err != nil {
		term.Fatal("[compile] %v", err)
	}

	out := sidecarPath(source)
	if err := os.WriteFile(out, []byte(wrapProgram(code)), 0644); err != nil {
		term.Fatal("[compile] write file failed: %v", err)
	}
	logger.I("[compile] wrote %s", out)
	return out
}

// runFile compiles source and hands the sidecar to `go run`, relaying the
// process output and exit status.
func runFile(source string) {
	out := compileFile(source)

	cmd := exec.Command("go", "run", out)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			os.Exit(ee.ExitCode())
		}
		term.Fatal("[run] %v", err)
	}
}

// sidecarPath swaps the source extension for the target one, keeping the
// base name: foo.lg -> foo.go.
func sidecarPath(source string) string {
	base := strings.TrimSuffix(source, filepath.Ext(source))
	return base + consts.SidecarExt
}

// wrapProgram embeds the compiled expression in a runnable program that
// prints its value.
func wrapProgram(expr string) string {
	var sb strings.Builder
	sb.WriteString("// Code generated by lisgo. DO NOT EDIT.\n\n")
	sb.WriteString("package " + config.SidecarPackage + "\n\n")
	sb.WriteString("import \"fmt\"\n\n")
	sb.WriteString("func main() {\n\tfmt.Println(" + expr + ")\n}\n")
	return sb.String()
}
