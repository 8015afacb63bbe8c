package jsonast

import (
	"github.com/askovholm/jsonast/ast"
	"github.com/askovholm/jsonast/parser"
)

// Parse parses src and returns the positioned syntax tree of the first
// complete top-level value. Literal lexemes are retained verbatim; no
// escape or numeric decoding is performed. Input after the first value
// is left unread.
//
// Each call owns an independent lexer/parser pair; no state is shared
// between calls. The first lexical or syntax failure aborts the parse
// and is returned as the error.
func Parse(src []byte, opts ...Option) (*ast.Program, error) {
	o := options{
		maxDepth: defaultMaxDepth,
	}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	p := parser.New(src)
	p.SetMaxDepth(o.maxDepth)
	return p.Parse()
}
