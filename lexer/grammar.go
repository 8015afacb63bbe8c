package lexer

import (
	"bytes"

	"github.com/askovholm/jsonast/token"
)

// A rule pairs a token kind with a recognizer anchored at a byte
// position in the source. The recognizer reports the matched length.
type rule struct {
	kind  token.Kind
	match func(src []byte, pos int) (n int, ok bool)
}

// grammar lists the lexical categories in match order. Earlier rules
// win: strings are tried before punctuators, so '"' only surfaces as a
// punctuator when no well-formed string starts at it.
var grammar = []rule{
	{token.STRING, matchString},
	{token.NUMBER, matchNumber},
	{token.PUNCTUATOR, matchPunctuator},
	{token.BOOLEAN, matchBoolean},
	{token.NULL, matchNull},
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// matchString matches '"', zero or more string characters, '"'.
func matchString(src []byte, pos int) (int, bool) {
	i := pos
	if i >= len(src) || src[i] != '"' {
		return 0, false
	}
	i++
	for {
		n, ok := matchStringChar(src, i)
		if !ok {
			break
		}
		i += n
	}
	if i >= len(src) || src[i] != '"' {
		return 0, false
	}
	return i + 1 - pos, true
}

// matchStringChar matches a single string character: an escape
// sequence, or any byte that is not a control character (0x00-0x1F),
// '"', or '\'.
func matchStringChar(src []byte, pos int) (int, bool) {
	if pos >= len(src) {
		return 0, false
	}
	c := src[pos]
	if c == '\\' {
		return matchEscape(src, pos)
	}
	if c < 0x20 || c == '"' {
		return 0, false
	}
	return 1, true
}

// matchEscape matches '\' followed by an escape letter, a literal line
// feed, a literal carriage return, or 'u' plus exactly four hex digits.
func matchEscape(src []byte, pos int) (int, bool) {
	if pos+1 >= len(src) || src[pos] != '\\' {
		return 0, false
	}
	switch src[pos+1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', '\n', '\r':
		return 2, true
	case 'u':
		if pos+6 > len(src) {
			return 0, false
		}
		for i := pos + 2; i < pos+6; i++ {
			if !isHexDigit(src[i]) {
				return 0, false
			}
		}
		return 6, true
	}
	return 0, false
}

// matchNumber matches either a fraction with optional exponent and no
// integer part (.456, .456e+9), or an integer with optional fraction
// and optional exponent.
func matchNumber(src []byte, pos int) (int, bool) {
	i := pos
	if n, ok := matchFraction(src, i); ok {
		i += n
		if n, ok := matchExponent(src, i); ok {
			i += n
		}
		return i - pos, true
	}
	n, ok := matchInteger(src, i)
	if !ok {
		return 0, false
	}
	i += n
	if n, ok := matchFraction(src, i); ok {
		i += n
	}
	if n, ok := matchExponent(src, i); ok {
		i += n
	}
	return i - pos, true
}

// matchInteger matches an optional '-' followed by either a nonzero
// digit and at least one more digit, or a single digit. A multi-digit
// run starting with '0' therefore matches only the '0'.
func matchInteger(src []byte, pos int) (int, bool) {
	i := pos
	if i < len(src) && src[i] == '-' {
		i++
	}
	if i >= len(src) || !isDigit(src[i]) {
		return 0, false
	}
	if src[i] != '0' && i+1 < len(src) && isDigit(src[i+1]) {
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		return i - pos, true
	}
	return i + 1 - pos, true
}

// matchFraction matches '.' followed by one or more digits.
func matchFraction(src []byte, pos int) (int, bool) {
	i := pos
	if i >= len(src) || src[i] != '.' {
		return 0, false
	}
	i++
	digits := i
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i == digits {
		return 0, false
	}
	return i - pos, true
}

// matchExponent matches 'e' or 'E' with a mandatory sign: e+5 and e-5
// are exponents, e5 is not.
func matchExponent(src []byte, pos int) (int, bool) {
	i := pos
	if i >= len(src) || (src[i] != 'e' && src[i] != 'E') {
		return 0, false
	}
	i++
	if i >= len(src) || (src[i] != '+' && src[i] != '-') {
		return 0, false
	}
	i++
	digits := i
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i == digits {
		return 0, false
	}
	return i - pos, true
}

func matchPunctuator(src []byte, pos int) (int, bool) {
	if pos >= len(src) {
		return 0, false
	}
	switch src[pos] {
	case '"', ':', ',', '[', ']', '{', '}':
		return 1, true
	}
	return 0, false
}

func matchBoolean(src []byte, pos int) (int, bool) {
	if bytes.HasPrefix(src[pos:], []byte("true")) {
		return len("true"), true
	}
	if bytes.HasPrefix(src[pos:], []byte("false")) {
		return len("false"), true
	}
	return 0, false
}

func matchNull(src []byte, pos int) (int, bool) {
	if bytes.HasPrefix(src[pos:], []byte("null")) {
		return len("null"), true
	}
	return 0, false
}
