package parser

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/askovholm/jsonast/ast"
	"github.com/askovholm/jsonast/errors"
	"github.com/askovholm/jsonast/lexer"
	"github.com/askovholm/jsonast/token"
)

const defaultMaxDepth = 1000

// Parser builds a positioned AST from source text by recursive descent
// over the token stream of its lexer. The first failure of any kind
// aborts the whole parse; no partial tree is returned.
type Parser struct {
	lx       *lexer.Lexer
	depth    int
	maxDepth int
}

// New creates a Parser over the given source text.
func New(input []byte) *Parser {
	return &Parser{
		lx:       lexer.New(input),
		maxDepth: defaultMaxDepth,
	}
}

// SetMaxDepth caps object/array nesting at n levels. Exceeding the cap
// fails the parse with a DepthError instead of exhausting the stack.
func (p *Parser) SetMaxDepth(n int) {
	p.maxDepth = n
}

// Parse parses the source and returns the program wrapping the first
// complete top-level value. Trailing input after that value is not an
// error; it is left unread.
func (p *Parser) Parse() (*ast.Program, error) {
	body, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &ast.Program{Body: body}, nil
}

// Each parse function is entered with the construct's first token still
// unconsumed and returns with every token of the construct consumed.

func (p *Parser) parseValue() (ast.Node, error) {
	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}
	if tok.IsEOF() {
		return nil, errors.ErrUnexpectedEOF
	}
	switch tok.Lexeme {
	case "{":
		return p.parseObjectLiteral()
	case "[":
		return p.parseArrayLiteral()
	}
	switch tok.Kind {
	case token.STRING, token.NUMBER, token.BOOLEAN, token.NULL:
		if tok, err = p.lx.Next(); err != nil {
			return nil, err
		}
		return literalNode(tok), nil
	}
	return nil, &errors.SyntaxError{
		Offset:   tok.Start,
		Expected: []string{"a value"},
		Got:      describe(tok),
	}
}

// parseObjectLiteral parses '{' (key ':' value (',' key ':' value)*)? '}'.
// Keys are string or number tokens; duplicates are legal and all kept
// in source order.
func (p *Parser) parseObjectLiteral() (ast.Node, error) {
	open, err := p.expect("{")
	if err != nil {
		return nil, err
	}
	if err := p.descend(open.Start); err != nil {
		return nil, err
	}
	defer p.ascend()

	props := []*ast.Property{}
	for !p.peekIs("}") {
		key, err := p.expectKind(token.STRING, token.NUMBER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		_, end := value.Span()
		props = append(props, &ast.Property{
			Start: key.Start,
			End:   end,
			Key:   key,
			Value: value,
		})
		if !p.peekIs("}") {
			if _, err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	closing, err := p.expect("}")
	if err != nil {
		return nil, err
	}
	return &ast.ObjectLiteral{Start: open.Start, End: closing.End, Properties: props}, nil
}

// parseArrayLiteral parses '[' (value (',' value)*)? ']'.
func (p *Parser) parseArrayLiteral() (ast.Node, error) {
	open, err := p.expect("[")
	if err != nil {
		return nil, err
	}
	if err := p.descend(open.Start); err != nil {
		return nil, err
	}
	defer p.ascend()

	elements := []ast.Node{}
	for !p.peekIs("]") {
		element, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
		if !p.peekIs("]") {
			if _, err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	closing, err := p.expect("]")
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Start: open.Start, End: closing.End, Elements: elements}, nil
}

// expect consumes the next token and fails unless its lexeme is one of
// the given lexemes.
func (p *Parser) expect(lexemes ...string) (token.Token, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return token.Token{}, err
	}
	if tok.IsEOF() || !slices.Contains(lexemes, tok.Lexeme) {
		expected := make([]string, len(lexemes))
		for i, l := range lexemes {
			expected[i] = strconv.Quote(l)
		}
		return token.Token{}, &errors.SyntaxError{
			Offset:   tok.Start,
			Expected: expected,
			Got:      describe(tok),
		}
	}
	return tok, nil
}

// expectKind consumes the next token and fails unless its kind is one
// of the given kinds.
func (p *Parser) expectKind(kinds ...token.Kind) (token.Token, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return token.Token{}, err
	}
	if !tok.IsEOF() && slices.Contains(kinds, tok.Kind) {
		return tok, nil
	}
	expected := make([]string, len(kinds))
	for i, k := range kinds {
		expected[i] = string(k)
	}
	return token.Token{}, &errors.SyntaxError{
		Offset:   tok.Start,
		Expected: expected,
		Got:      describe(tok),
	}
}

// peekIs reports whether the next token, peeked without consuming, has
// exactly the given lexeme. Lexing failures surface on the following
// consuming call.
func (p *Parser) peekIs(lexeme string) bool {
	tok, err := p.lx.Peek()
	if err != nil || tok.IsEOF() {
		return false
	}
	return tok.Lexeme == lexeme
}

func (p *Parser) descend(at int) error {
	p.depth++
	if p.depth > p.maxDepth {
		return &errors.DepthError{Offset: at, Limit: p.maxDepth}
	}
	return nil
}

func (p *Parser) ascend() {
	p.depth--
}

func literalNode(tok token.Token) ast.Node {
	switch tok.Kind {
	case token.STRING:
		return &ast.StringLiteral{Start: tok.Start, End: tok.End, Value: tok.Lexeme}
	case token.NUMBER:
		return &ast.NumericLiteral{Start: tok.Start, End: tok.End, Value: tok.Lexeme}
	case token.BOOLEAN:
		return &ast.BooleanLiteral{Start: tok.Start, End: tok.End, Value: tok.Lexeme}
	default:
		return &ast.NullLiteral{Start: tok.Start, End: tok.End}
	}
}

func describe(tok token.Token) string {
	if tok.IsEOF() {
		return "end of input"
	}
	return fmt.Sprintf("%s %s", tok.Kind, strconv.Quote(tok.Lexeme))
}
