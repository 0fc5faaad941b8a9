package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lisgo-lang/lisgo/compiler/ast"
)

// Error is a syntax error, formatted as "chunkName:line: msg".
type Error struct {
	ChunkName string
	Line      int
	Msg       string
}

func (self *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", self.ChunkName, self.Line, self.Msg)
}

type parser struct {
	chunk     string // remaining source code
	chunkName string // source name, for diagnostics
	line      int    // current line number
}

// Parse reads the first top-level form of chunk and returns its AST.
// Trailing content after the first form is ignored. An empty (or
// whitespace-only) chunk yields a nil node and no error.
func Parse(chunk, chunkName string) (node *ast.Node, err error) {
	self := &parser{chunk, chunkName, 1}
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			node, err = nil, pe
		}
	}()
	return self.parseNode(), nil
}

// parseNode returns the next node, or nil when the input is exhausted.
func (self *parser) parseNode() *ast.Node {
	self.skipWhiteSpaces()
	if len(self.chunk) == 0 {
		return nil
	}
	switch self.chunk[0] {
	case '(':
		return self.parseList()
	case ')':
		// a stray closer is no node at all; the enclosing list (if any)
		// consumes closers before recursing
		return nil
	case '"':
		return self.parseString()
	case '\'':
		return self.parseQuote()
	}
	return self.parseAtom()
}

func (self *parser) parseList() *ast.Node {
	self.next(1) // skip `(`
	children := []*ast.Node{}
	for {
		self.skipWhiteSpaces()
		if len(self.chunk) == 0 {
			self.error("unbalanced parentheses")
		}
		if self.chunk[0] == ')' {
			self.next(1)
			return ast.NewList(children)
		}
		children = append(children, self.parseNode())
	}
}

func (self *parser) parseString() *ast.Node {
	self.next(1) // skip opening `"`
	var buf strings.Builder
	for {
		if len(self.chunk) == 0 {
			self.error("unterminated string")
		}
		c := self.chunk[0]
		switch c {
		case '"':
			self.next(1)
			return ast.NewString(buf.String())
		case '\\':
			if len(self.chunk) < 2 {
				self.error("unterminated string")
			}
			esc := self.chunk[1]
			switch esc {
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			case '"':
				buf.WriteByte('"')
			case '\\':
				buf.WriteByte('\\')
			default:
				// permissive: an unknown escape keeps the escaped character
				buf.WriteByte(esc)
			}
			if esc == '\n' {
				self.line++
			}
			self.next(2)
		default:
			if c == '\n' {
				self.line++
			}
			buf.WriteByte(c)
			self.next(1)
		}
	}
}

// parseQuote desugars 'X into (quote X).
func (self *parser) parseQuote() *ast.Node {
	self.next(1) // skip `'`
	node := self.parseNode()
	if node == nil {
		self.error("expected expression after quote")
	}
	return ast.NewList([]*ast.Node{ast.NewSymbol("quote"), node})
}

// parseAtom scans a maximal run of non-whitespace, non-parenthesis
// characters and classifies it: integer, then float, then symbol.
func (self *parser) parseAtom() *ast.Node {
	end := 0
	for end < len(self.chunk) && !isDelimiter(self.chunk[end]) {
		end++
	}
	token := self.chunk[:end]
	self.next(end)
	if token == "" {
		return nil
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return ast.NewInt(i)
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return ast.NewFloat(f)
	}
	return ast.NewSymbol(token)
}

func (self *parser) skipWhiteSpaces() {
	for len(self.chunk) > 0 {
		if self.test("\r\n") || self.test("\n\r") {
			self.next(2)
			self.line++
		} else if isNewLine(self.chunk[0]) {
			self.next(1)
			self.line++
		} else if isWhiteSpace(self.chunk[0]) {
			self.next(1)
		} else {
			break
		}
	}
}

func (self *parser) next(n int) {
	self.chunk = self.chunk[n:]
}

func (self *parser) test(s string) bool {
	return strings.HasPrefix(self.chunk, s)
}

func (self *parser) error(f string, a ...any) {
	panic(&Error{self.chunkName, self.line, fmt.Sprintf(f, a...)})
}

func isWhiteSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isNewLine(c byte) bool {
	return c == '\r' || c == '\n'
}

func isDelimiter(c byte) bool {
	return isWhiteSpace(c) || c == '(' || c == ')'
}
