package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/askovholm/jsonast/errors"
	"github.com/askovholm/jsonast/token"
)

// Lexer turns source text into a stream of positioned tokens. It
// supports arbitrary-depth lookahead through an internal FIFO stash of
// already-lexed tokens. A Lexer is not restartable: once its position
// advances it cannot rewind.
type Lexer struct {
	input []byte
	pos   int
	stash []token.Token // lexed but not yet consumed, oldest first
}

// New creates a Lexer over the given source text.
func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

// Next consumes and returns the next token: the oldest stashed token if
// any, otherwise a freshly lexed one. Once the stash is empty and the
// input is exhausted it returns the EOF sentinel.
func (l *Lexer) Next() (token.Token, error) {
	if len(l.stash) > 0 {
		tok := l.stash[0]
		l.stash = l.stash[1:]
		return tok, nil
	}
	return l.lex()
}

// Peek returns the next token without consuming it. At end of input it
// returns the EOF sentinel.
func (l *Lexer) Peek() (token.Token, error) {
	return l.Lookahead(0)
}

// Lookahead returns the token n positions ahead of the current read
// position without consuming anything, stashing every token up to and
// including position n. n must be non-negative. If the input runs out
// before position n, the EOF sentinel is returned.
func (l *Lexer) Lookahead(n int) (token.Token, error) {
	if n < 0 {
		return token.Token{}, fmt.Errorf("jsonast: negative lookahead %d", n)
	}
	for len(l.stash) <= n {
		tok, err := l.lex()
		if err != nil {
			return token.Token{}, err
		}
		if tok.IsEOF() {
			return tok, nil
		}
		l.stash = append(l.stash, tok)
	}
	return l.stash[n], nil
}

// lex skips whitespace and matches the grammar rules in order against
// the remaining input, returning a token for the first rule that
// matches. Trailing whitespace is skipped after a successful match so
// the position always rests on the next lexeme or the end of input.
func (l *Lexer) lex() (token.Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return token.Token{Kind: token.EOF, Start: l.pos, End: l.pos}, nil
	}
	for _, r := range grammar {
		n, ok := r.match(l.input, l.pos)
		if !ok {
			continue
		}
		tok := token.Token{
			Kind:   r.kind,
			Lexeme: string(l.input[l.pos : l.pos+n]),
			Start:  l.pos,
			End:    l.pos + n,
		}
		l.pos += n
		l.skipWhitespace()
		return tok, nil
	}
	ch, _ := utf8.DecodeRune(l.input[l.pos:])
	return token.Token{}, &errors.LexError{Offset: l.pos, Char: ch}
}

// skipWhitespace advances past tabs, line feeds, carriage returns and
// spaces. A CRLF pair is consumed as one unit so it never splits across
// a boundary decision.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\r':
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == '\n' {
				l.pos += 2
			} else {
				l.pos++
			}
		case '\t', '\n', ' ':
			l.pos++
		default:
			return
		}
	}
}
