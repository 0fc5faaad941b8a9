package compiler

import (
	"errors"
	"testing"

	"github.com/lisgo-lang/lisgo/compiler/codegen"
	"github.com/lisgo-lang/lisgo/compiler/parser"
)

func TestCompile(t *testing.T) {
	cases := []struct{ in, want string }{
		{"(+ 1 2)", "(1 + 2)"},
		{"(if (> 5 3) 10 20)", "func() any { if (5 > 3) { return 10 }; return 20 }()"},
		{"(let ((a 10) (b 20)) (+ a b))", "func() any { a := 10; b := 20; return (a + b) }()"},
		{"(lambda ((x int)) (* x x))", "func(x int) any { return (x * x) }"},
		{"", "nil"},
		{"()", "nil"},
		{"(do)", "nil"},
	}
	for _, c := range cases {
		got, err := Compile(c.in, "test")
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Compile(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCompileCached(t *testing.T) {
	const src = "(let ((n 3)) (* n n))"
	first, err := Compile(src, "a")
	if err != nil {
		t.Fatal(err)
	}
	// second call is served from the cache and must be byte-identical
	second, err := Compile(src, "b")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("cached compile differs: %q vs %q", first, second)
	}
}

func TestCompileParseError(t *testing.T) {
	_, err := Compile("(+ 1 2", "test")
	var pe *parser.Error
	if !errors.As(err, &pe) {
		t.Fatalf("want *parser.Error, got %v", err)
	}
}

func TestCompileEmitError(t *testing.T) {
	out, err := Compile("(if 1 2)", "test")
	var ge *codegen.Error
	if !errors.As(err, &ge) {
		t.Fatalf("want *codegen.Error, got %v", err)
	}
	if out != "" {
		t.Fatalf("want no partial output, got %q", out)
	}
}
