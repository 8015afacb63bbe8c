package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	asterrors "github.com/askovholm/jsonast/errors"
	"github.com/askovholm/jsonast/lexer"
	"github.com/askovholm/jsonast/token"
)

func TestNext(t *testing.T) {
	input := "{\"a\": [1, true],\r\n\t\"b\": null}"

	expectedTokens := []struct {
		kind   token.Kind
		lexeme string
		start  int
		end    int
	}{
		{token.PUNCTUATOR, "{", 0, 1},
		{token.STRING, `"a"`, 1, 4},
		{token.PUNCTUATOR, ":", 4, 5},
		{token.PUNCTUATOR, "[", 6, 7},
		{token.NUMBER, "1", 7, 8},
		{token.PUNCTUATOR, ",", 8, 9},
		{token.BOOLEAN, "true", 10, 14},
		{token.PUNCTUATOR, "]", 14, 15},
		{token.PUNCTUATOR, ",", 15, 16},
		{token.STRING, `"b"`, 19, 22},
		{token.PUNCTUATOR, ":", 22, 23},
		{token.NULL, "null", 24, 28},
		{token.PUNCTUATOR, "}", 28, 29},
	}

	l := lexer.New([]byte(input))

	for i, tt := range expectedTokens {
		tok, err := l.Next()
		require.NoError(t, err, "test[%d]", i)
		require.Equal(t, tt.kind, tok.Kind, "test[%d] - wrong kind", i)
		require.Equal(t, tt.lexeme, tok.Lexeme, "test[%d] - wrong lexeme", i)
		require.Equal(t, tt.start, tok.Start, "test[%d] - wrong start", i)
		require.Equal(t, tt.end, tok.End, "test[%d] - wrong end", i)
	}

	// Exhausted input keeps returning the EOF sentinel.
	for n := 0; n < 2; n++ {
		tok, err := l.Next()
		require.NoError(t, err)
		require.True(t, tok.IsEOF())
		require.Equal(t, len(input), tok.Start)
		require.Equal(t, len(input), tok.End)
	}
}

func TestNumberLexemes(t *testing.T) {
	for _, input := range []string{"123", "123.456", "123.456e+9", ".456", ".456e+9", "-0.5E-2"} {
		t.Run(input, func(t *testing.T) {
			l := lexer.New([]byte(input))
			tok, err := l.Next()
			require.NoError(t, err)
			require.Equal(t, token.NUMBER, tok.Kind)
			require.Equal(t, input, tok.Lexeme)
			require.Equal(t, 0, tok.Start)
			require.Equal(t, len(input), tok.End)
		})
	}
}

func TestLookahead(t *testing.T) {
	l := lexer.New([]byte("[1, 2]"))

	// Lookahead buffers without consuming.
	tok, err := l.Lookahead(3)
	require.NoError(t, err)
	require.Equal(t, "2", tok.Lexeme)

	tok, err = l.Lookahead(0)
	require.NoError(t, err)
	require.Equal(t, "[", tok.Lexeme)

	// Peek is Lookahead(0).
	tok, err = l.Peek()
	require.NoError(t, err)
	require.Equal(t, "[", tok.Lexeme)

	// Next drains the stash front first.
	tok, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, "[", tok.Lexeme)

	tok, err = l.Peek()
	require.NoError(t, err)
	require.Equal(t, "1", tok.Lexeme)

	// Lookahead past the end returns the EOF sentinel.
	tok, err = l.Lookahead(10)
	require.NoError(t, err)
	require.True(t, tok.IsEOF())

	// Buffered tokens are still intact after overshooting.
	tok, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, "1", tok.Lexeme)
}

func TestNegativeLookahead(t *testing.T) {
	l := lexer.New([]byte("[]"))
	_, err := l.Lookahead(-1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "negative lookahead")
}

func TestLexError(t *testing.T) {
	l := lexer.New([]byte("{@}"))

	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "{", tok.Lexeme)

	_, err = l.Next()
	var lexErr *asterrors.LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 1, lexErr.Offset)
	require.Equal(t, '@', lexErr.Char)
}

func TestQuoteLexesAsPunctuatorWhenNoStringMatches(t *testing.T) {
	// An unterminated string leaves the quote to the punctuator rule.
	l := lexer.New([]byte(`"abc`))

	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.PUNCTUATOR, tok.Kind)
	require.Equal(t, `"`, tok.Lexeme)

	_, err = l.Next()
	var lexErr *asterrors.LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 1, lexErr.Offset)
	require.Equal(t, 'a', lexErr.Char)
}

func TestWhitespaceOnly(t *testing.T) {
	l := lexer.New([]byte(" \t\r\n \r "))
	tok, err := l.Next()
	require.NoError(t, err)
	require.True(t, tok.IsEOF())
}

func TestLeadingZeroSplits(t *testing.T) {
	// 0123 is not a valid multi-digit integer: the zero lexes alone.
	l := lexer.New([]byte("0123"))

	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "0", tok.Lexeme)
	require.Equal(t, 0, tok.Start)

	tok, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, "123", tok.Lexeme)
	require.Equal(t, 1, tok.Start)
	require.Equal(t, 4, tok.End)
}
