package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/lisgo-lang/lisgo/compiler/ast"
	"github.com/lisgo-lang/lisgo/compiler/parser"
)

func gen(t *testing.T, src string) string {
	t.Helper()
	node, err := parser.Parse(src, "test")
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	code, err := Gen(node)
	if err != nil {
		t.Fatalf("gen %q: %v", src, err)
	}
	return code
}

func TestGenLiterals(t *testing.T) {
	cases := []struct{ in, want string }{
		{"42", "42"},
		{"-7", "-7"},
		{"2.5", "2.5"},
		{"x", "x"},
		{"()", "nil"},
		{`"hi"`, `"hi"`},
		{`"a\nb\t\"c\"\\"`, `"a\nb\t\"c\"\\"`},
	}
	for _, c := range cases {
		if got := gen(t, c.in); got != c.want {
			t.Fatalf("gen(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenNilNode(t *testing.T) {
	code, err := Gen(nil)
	if err != nil {
		t.Fatal(err)
	}
	if code != "nil" {
		t.Fatalf("got %q", code)
	}
}

func TestGenLiteralIdempotence(t *testing.T) {
	for _, in := range []string{"42", "2.5", `"s"`, "sym"} {
		if gen(t, in) != gen(t, in) {
			t.Fatalf("emit of %q not deterministic", in)
		}
	}
}

func TestGenIf(t *testing.T) {
	got := gen(t, "(if (> 5 3) 10 20)")
	want := "func() any { if (5 > 3) { return 10 }; return 20 }()"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenLet(t *testing.T) {
	got := gen(t, "(let ((a 10) (b 20)) (+ a b))")
	want := "func() any { a := 10; b := 20; return (a + b) }()"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenLambda(t *testing.T) {
	got := gen(t, "(lambda ((x int)) (* x x))")
	want := "func(x int) any { return (x * x) }"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = gen(t, "(lambda ((x int) (y float64)) (+ x y))")
	want = "func(x int, y float64) any { return (x + y) }"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenDo(t *testing.T) {
	if got := gen(t, "(do)"); got != "nil" {
		t.Fatalf("empty do: got %q", got)
	}
	got := gen(t, `(do (fmt.Println "hi") (+ 1 2))`)
	want := `func() any { (fmt.Println)("hi"); return (1 + 2) }()`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenListPrimitives(t *testing.T) {
	cases := []struct{ in, want string }{
		{"(car xs)", "(xs)[0]"},
		{"(cdr xs)", "(xs)[1:]"},
		{"(cons 1 xs)", "append([]any{1}, xs...)"},
		{"(cons 1 ())", "[]any{1}"},
		{"(cons 1 '())", "append([]any{1}, []any{}...)"},
		{
			"(cons 1 (cons 2 (cons 3 '())))",
			"append([]any{1}, append([]any{2}, append([]any{3}, []any{}...)...)...)",
		},
	}
	for _, c := range cases {
		if got := gen(t, c.in); got != c.want {
			t.Fatalf("gen(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenQuote(t *testing.T) {
	cases := []struct{ in, want string }{
		{"'()", "[]any{}"},
		{"'(1 2 3)", "[]any{1, 2, 3}"},
		{"'(a (b 2))", `[]any{"a", []any{"b", 2}}`},
		{"'x", `"x"`},
	}
	for _, c := range cases {
		if got := gen(t, c.in); got != c.want {
			t.Fatalf("gen(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenOperatorDispatch(t *testing.T) {
	cases := []struct{ in, want string }{
		// two operands, operator-like head: infix
		{"(+ 1 2)", "(1 + 2)"},
		{"(>= a b)", "(a >= b)"},
		// any other arity: call with parenthesized callee
		{"(+ 1 2 3)", "(+)(1, 2, 3)"},
		{"(- 1)", "(-)(1)"},
		// plain identifiers are always calls
		{"(f 1 2)", "f(1, 2)"},
		{"(f)", "f()"},
	}
	for _, c := range cases {
		if got := gen(t, c.in); got != c.want {
			t.Fatalf("gen(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenNesting(t *testing.T) {
	got := gen(t, "(if (> 1 2) (let ((a 1)) a) (do 3))")
	want := "func() any { if (1 > 2) { return func() any { a := 1; return a }() }; return func() any { return 3 }() }()"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenErrors(t *testing.T) {
	cases := []struct{ in, wantMsg string }{
		{"(if 1 2)", "if expects 3"},
		{"(if 1 2 3 4)", "if expects 3"},
		{"((f) 1)", "operator must be a symbol"},
		{`("s" 1)`, "operator must be a symbol"},
		{"(1 2)", "operator must be a symbol"},
		{"(let 1 2)", "let bindings must be a list"},
		{"(let ((a 1 2)) a)", "malformed let binding"},
		{"(let ((1 2)) 3)", "binding name must be a symbol"},
		{"(let ((a 1)))", "let expects bindings and a body"},
		{"(lambda x x)", "lambda parameters must be a list"},
		{"(lambda ((x)) x)", "malformed lambda parameter"},
		{"(lambda ((1 int)) 1)", "parameter name must be a symbol"},
		{"(lambda ((x (int))) x)", "parameter type must be a symbol"},
		{"(car)", "car expects 1"},
		{"(car a b)", "car expects 1"},
		{"(cdr)", "cdr expects 1"},
		{"(cons 1)", "cons expects 2"},
		{"(quote)", "quote expects 1"},
	}
	for _, c := range cases {
		node, err := parser.Parse(c.in, "test")
		if err != nil {
			t.Fatalf("parse %q: %v", c.in, err)
		}
		code, err := Gen(node)
		if err == nil {
			t.Fatalf("gen(%q): want error, got %q", c.in, code)
		}
		var ge *Error
		if !errors.As(err, &ge) {
			t.Fatalf("gen(%q): want *codegen.Error, got %T", c.in, err)
		}
		if !strings.Contains(ge.Msg, c.wantMsg) {
			t.Fatalf("gen(%q): got %q, want substring %q", c.in, ge.Msg, c.wantMsg)
		}
		if code != "" {
			t.Fatalf("gen(%q): partial output %q with error", c.in, code)
		}
	}
}

func TestIsOperatorLike(t *testing.T) {
	for _, s := range []string{"+", ">=", "fmt.Println", "a-b", "<"} {
		if !isOperatorLike(s) {
			t.Fatalf("%q should be operator-like", s)
		}
	}
	for _, s := range []string{"f", "foo_bar", "x1", "Print"} {
		if isOperatorLike(s) {
			t.Fatalf("%q should not be operator-like", s)
		}
	}
}

func TestGenStringData(t *testing.T) {
	node := ast.NewString("line\nquote\"back\\slash")
	code, err := Gen(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `"line\nquote\"back\\slash"`
	if code != want {
		t.Fatalf("got %q, want %q", code, want)
	}
}
