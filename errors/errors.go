package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnexpectedEOF is returned when a value is required but the input
// has no tokens left.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// LexError reports a character at a given byte offset that no lexical
// rule recognizes.
type LexError struct {
	Offset int
	Char   rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Offset)
}

// SyntaxError reports a token that does not match what the grammar
// requires at its position. Expected holds the acceptable lexemes or
// token kinds; Got describes the token actually found.
type SyntaxError struct {
	Offset   int
	Expected []string
	Got      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unexpected %s at offset %d, expected %s",
		e.Got, e.Offset, strings.Join(e.Expected, " or "))
}

// DepthError reports object/array nesting deeper than the configured
// ceiling.
type DepthError struct {
	Offset int
	Limit  int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("nesting too deep at offset %d: exceeds %d levels", e.Offset, e.Limit)
}
