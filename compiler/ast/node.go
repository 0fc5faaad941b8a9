package ast

import (
	"strconv"
	"strings"
)

// node kind
const (
	KindList = iota
	KindSymbol
	KindString
	KindInt
	KindFloat
)

// Node is one S-expression. Kind selects which payload field is active;
// the others keep their zero value. Nodes are never mutated after the
// parser builds them.
type Node struct {
	Kind int     `json:"kind"`
	List []*Node `json:"list,omitempty"`
	Sym  string  `json:"sym,omitempty"`
	Str  string  `json:"str,omitempty"`
	Int  int64   `json:"int,omitempty"`
	Flt  float64 `json:"flt,omitempty"`
}

func NewList(children []*Node) *Node {
	return &Node{Kind: KindList, List: children}
}

func NewSymbol(sym string) *Node {
	return &Node{Kind: KindSymbol, Sym: sym}
}

func NewString(str string) *Node {
	return &Node{Kind: KindString, Str: str}
}

func NewInt(i int64) *Node {
	return &Node{Kind: KindInt, Int: i}
}

func NewFloat(f float64) *Node {
	return &Node{Kind: KindFloat, Flt: f}
}

// String renders the node back as source text, for diagnostics.
func (self *Node) String() string {
	if self == nil {
		return "()"
	}
	switch self.Kind {
	case KindList:
		parts := make([]string, 0, len(self.List))
		for idx := range self.List {
			parts = append(parts, self.List[idx].String())
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindSymbol:
		return self.Sym
	case KindString:
		return strconv.Quote(self.Str)
	case KindInt:
		return strconv.FormatInt(self.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(self.Flt, 'g', -1, 64)
	}
	return "?"
}
