package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lisgo-lang/lisgo/compiler/ast"
)

// Error reports a malformed special form or call shape.
type Error struct {
	Msg string
}

func (self *Error) Error() string {
	return self.Msg
}

// Gen emits node as a single Go expression. Special forms are checked
// strictly; the first violation aborts with an *Error and no output.
func Gen(node *ast.Node) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			ge, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			code, err = "", ge
		}
	}()
	return genNode(node), nil
}

func genNode(node *ast.Node) string {
	if node == nil {
		return "nil"
	}
	switch node.Kind {
	case ast.KindSymbol:
		return node.Sym
	case ast.KindString:
		return quote(node.Str)
	case ast.KindInt:
		return strconv.FormatInt(node.Int, 10)
	case ast.KindFloat:
		return strconv.FormatFloat(node.Flt, 'g', -1, 64)
	case ast.KindList:
		return genList(node.List)
	}
	errorf("unknown node kind %d", node.Kind)
	return ""
}

func genList(items []*ast.Node) string {
	if len(items) == 0 {
		return "nil"
	}
	head := items[0]
	if head.Kind != ast.KindSymbol {
		errorf("operator must be a symbol, got %s", head)
	}
	args := items[1:]
	switch head.Sym {
	case "if":
		return genIf(args)
	case "let":
		return genLet(args)
	case "lambda":
		return genLambda(args)
	case "do":
		return genDo(args)
	case "car":
		return genCar(args)
	case "cdr":
		return genCdr(args)
	case "cons":
		return genCons(args)
	case "quote":
		return genQuote(args)
	}
	return genCall(head.Sym, args)
}

// genIf emits a conditional as an immediately invoked func so it stays
// usable in expression position.
func genIf(args []*ast.Node) string {
	if len(args) != 3 {
		errorf("if expects 3 operands, got %d", len(args))
	}
	cond, then, els := genNode(args[0]), genNode(args[1]), genNode(args[2])
	return fmt.Sprintf("func() any { if %s { return %s }; return %s }()", cond, then, els)
}

// genLet emits (let ((name value) ...) body) as a scope that binds each
// pair in order and returns the body. Go has no implicit last-expression
// value, so the body gets an explicit return.
func genLet(args []*ast.Node) string {
	if len(args) != 2 {
		errorf("let expects bindings and a body, got %d operands", len(args))
	}
	bindings := args[0]
	if bindings.Kind != ast.KindList {
		errorf("let bindings must be a list, got %s", bindings)
	}
	var sb strings.Builder
	sb.WriteString("func() any { ")
	for idx := range bindings.List {
		pair := bindings.List[idx]
		if pair.Kind != ast.KindList || len(pair.List) != 2 {
			errorf("malformed let binding %s, want (name value)", pair)
		}
		name := pair.List[0]
		if name.Kind != ast.KindSymbol {
			errorf("let binding name must be a symbol, got %s", name)
		}
		sb.WriteString(name.Sym)
		sb.WriteString(" := ")
		sb.WriteString(genNode(pair.List[1]))
		sb.WriteString("; ")
	}
	sb.WriteString("return ")
	sb.WriteString(genNode(args[1]))
	sb.WriteString(" }()")
	return sb.String()
}

// genLambda emits (lambda ((name type) ...) body) as a func literal with
// typed parameters. Parameter types pass through as Go type names.
func genLambda(args []*ast.Node) string {
	if len(args) != 2 {
		errorf("lambda expects parameters and a body, got %d operands", len(args))
	}
	params := args[0]
	if params.Kind != ast.KindList {
		errorf("lambda parameters must be a list, got %s", params)
	}
	decls := make([]string, 0, len(params.List))
	for idx := range params.List {
		pair := params.List[idx]
		if pair.Kind != ast.KindList || len(pair.List) != 2 {
			errorf("malformed lambda parameter %s, want (name type)", pair)
		}
		name, typ := pair.List[0], pair.List[1]
		if name.Kind != ast.KindSymbol {
			errorf("lambda parameter name must be a symbol, got %s", name)
		}
		if typ.Kind != ast.KindSymbol {
			errorf("lambda parameter type must be a symbol, got %s", typ)
		}
		decls = append(decls, name.Sym+" "+typ.Sym)
	}
	return fmt.Sprintf("func(%s) any { return %s }", strings.Join(decls, ", "), genNode(args[1]))
}

// genDo sequences its operands in a fresh scope and returns the last one.
func genDo(args []*ast.Node) string {
	if len(args) == 0 {
		return "nil"
	}
	var sb strings.Builder
	sb.WriteString("func() any { ")
	for idx := 0; idx < len(args)-1; idx++ {
		sb.WriteString(genNode(args[idx]))
		sb.WriteString("; ")
	}
	sb.WriteString("return ")
	sb.WriteString(genNode(args[len(args)-1]))
	sb.WriteString(" }()")
	return sb.String()
}

func genCar(args []*ast.Node) string {
	if len(args) != 1 {
		errorf("car expects 1 operand, got %d", len(args))
	}
	return "(" + genNode(args[0]) + ")[0]"
}

func genCdr(args []*ast.Node) string {
	if len(args) != 1 {
		errorf("cdr expects 1 operand, got %d", len(args))
	}
	return "(" + genNode(args[0]) + ")[1:]"
}

func genCons(args []*ast.Node) string {
	if len(args) != 2 {
		errorf("cons expects 2 operands, got %d", len(args))
	}
	elem := genNode(args[0])
	seq := genNode(args[1])
	if seq == "nil" {
		return "[]any{" + elem + "}"
	}
	return fmt.Sprintf("append([]any{%s}, %s...)", elem, seq)
}

// genQuote emits the operand as Go data: lists become []any literals,
// symbols become strings, other leaves keep their literal text.
func genQuote(args []*ast.Node) string {
	if len(args) != 1 {
		errorf("quote expects 1 operand, got %d", len(args))
	}
	return genQuoted(args[0])
}

func genQuoted(node *ast.Node) string {
	if node == nil {
		return "nil"
	}
	switch node.Kind {
	case ast.KindList:
		elems := make([]string, 0, len(node.List))
		for idx := range node.List {
			elems = append(elems, genQuoted(node.List[idx]))
		}
		return "[]any{" + strings.Join(elems, ", ") + "}"
	case ast.KindSymbol:
		return quote(node.Sym)
	}
	return genNode(node)
}

// genCall handles everything that is not a special form. An operator-like
// head applied to exactly two operands becomes infix; any other shape is a
// plain call, with operator-like heads parenthesized so the call target
// cannot be misread as infix syntax.
func genCall(sym string, args []*ast.Node) string {
	operands := make([]string, 0, len(args))
	for idx := range args {
		operands = append(operands, genNode(args[idx]))
	}
	if isOperatorLike(sym) {
		if len(operands) == 2 {
			return fmt.Sprintf("(%s %s %s)", operands[0], sym, operands[1])
		}
		sym = "(" + sym + ")"
	}
	return sym + "(" + strings.Join(operands, ", ") + ")"
}

// isOperatorLike reports whether sym contains any character outside
// letters, digits and underscore.
func isOperatorLike(sym string) bool {
	for i := 0; i < len(sym); i++ {
		c := sym[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return true
		}
	}
	return false
}

// quote renders s as a Go string literal using the same escape set the
// parser resolves, plus carriage return (raw CR is illegal in a Go
// interpreted string literal).
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func errorf(f string, a ...any) {
	panic(&Error{fmt.Sprintf(f, a...)})
}
