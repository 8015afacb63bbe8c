package ast

import (
	"bytes"
	"strings"

	"github.com/askovholm/jsonast/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// Span returns the half-open [start, end) byte range the node
	// occupies in the source text.
	Span() (start, end int)
	// String reconstructs the node's source text from its lexemes.
	String() string
}

// Program is the root of a parsed document. It wraps the single
// top-level value.
type Program struct {
	Body Node
}

// Span returns the span of the program's body.
func (p *Program) Span() (int, int) {
	if p.Body == nil {
		return 0, 0
	}
	return p.Body.Span()
}

// String returns a string representation of the program.
func (p *Program) String() string {
	if p.Body == nil {
		return ""
	}
	return p.Body.String()
}

// ObjectLiteral represents an object literal.
type ObjectLiteral struct {
	Start, End int // spans the '{' and '}' tokens
	Properties []*Property
}

func (ol *ObjectLiteral) Span() (int, int) { return ol.Start, ol.End }
func (ol *ObjectLiteral) String() string {
	var out bytes.Buffer
	props := []string{}
	for _, p := range ol.Properties {
		props = append(props, p.String())
	}
	out.WriteString("{")
	out.WriteString(strings.Join(props, ","))
	out.WriteString("}")
	return out.String()
}

// Property represents a key-value pair in an object literal. The key is
// kept as its raw token; string keys retain their quotes, numeric keys
// have none. The span runs from the key's start to the value's end.
type Property struct {
	Start, End int
	Key        token.Token
	Value      Node
}

func (pr *Property) Span() (int, int) { return pr.Start, pr.End }
func (pr *Property) String() string {
	return pr.Key.Lexeme + ":" + pr.Value.String()
}

// ArrayLiteral represents an array literal.
type ArrayLiteral struct {
	Start, End int // spans the '[' and ']' tokens
	Elements   []Node
}

func (al *ArrayLiteral) Span() (int, int) { return al.Start, al.End }
func (al *ArrayLiteral) String() string {
	var out bytes.Buffer
	elements := []string{}
	for _, el := range al.Elements {
		elements = append(elements, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ","))
	out.WriteString("]")
	return out.String()
}

// StringLiteral represents a string literal. Value is the raw lexeme
// including the surrounding quotes; escape sequences are not decoded.
type StringLiteral struct {
	Start, End int
	Value      string
}

func (sl *StringLiteral) Span() (int, int) { return sl.Start, sl.End }
func (sl *StringLiteral) String() string   { return sl.Value }

// NumericLiteral represents a numeric literal. Value is the raw lexeme;
// it is not converted to a native number.
type NumericLiteral struct {
	Start, End int
	Value      string
}

func (nl *NumericLiteral) Span() (int, int) { return nl.Start, nl.End }
func (nl *NumericLiteral) String() string   { return nl.Value }

// BooleanLiteral represents a boolean literal. Value is the lexeme,
// "true" or "false".
type BooleanLiteral struct {
	Start, End int
	Value      string
}

func (bl *BooleanLiteral) Span() (int, int) { return bl.Start, bl.End }
func (bl *BooleanLiteral) String() string   { return bl.Value }

// NullLiteral represents a null literal.
type NullLiteral struct {
	Start, End int
}

func (nl *NullLiteral) Span() (int, int) { return nl.Start, nl.End }
func (nl *NullLiteral) String() string   { return "null" }
