package token

// Kind is the lexical category of a token.
type Kind string

const (
	STRING     Kind = "string"     // "hello", including the quotes
	NUMBER     Kind = "number"     // 123, -4.5, .456e+9
	PUNCTUATOR Kind = "punctuator" // one of " : , [ ] { }
	BOOLEAN    Kind = "boolean"    // true, false
	NULL       Kind = "null"       // null

	// EOF marks exhausted input. It is never produced for source text.
	EOF Kind = "eof"
)

// Token represents a lexical token. Lexeme is the exact matched source
// substring, undecoded. Start and End are half-open byte offsets into
// the source, so End == Start + len(Lexeme).
type Token struct {
	Kind   Kind
	Lexeme string
	Start  int
	End    int
}

// IsEOF reports whether the token is the end-of-input sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}
