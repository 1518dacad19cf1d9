// Package zonefile provides the lexical token stream for RFC 1035 zone-file
// text. The record text parsers in internal/dns/rdata consume these tokens
// positionally; the higher-level master-file parser lives in
// internal/dns/zone.
package zonefile

import (
	"errors"
	"fmt"
	"strings"
)

// TokenKind distinguishes the lexical classes a record parser can see.
type TokenKind int

const (
	// KindCharData is a bare whitespace-delimited word.
	KindCharData TokenKind = iota
	// KindQuoted is a double-quoted string with the quotes stripped and
	// \" / \\ escapes resolved.
	KindQuoted
)

// Token is one lexical item from a zone-file entry.
type Token struct {
	Kind TokenKind
	Text string
}

// CharData builds a bare-word token.
func CharData(s string) Token {
	return Token{Kind: KindCharData, Text: s}
}

// Quoted builds a quoted-string token.
func Quoted(s string) Token {
	return Token{Kind: KindQuoted, Text: s}
}

// String renders the token the way it would appear in a zone file, which is
// how it shows up in diagnostics.
func (t Token) String() string {
	if t.Kind == KindQuoted {
		return `"` + strings.ReplaceAll(strings.ReplaceAll(t.Text, `\`, `\\`), `"`, `\"`) + `"`
	}
	return t.Text
}

var (
	// ErrMissingToken is returned when a record parser runs out of tokens
	// before all required fields were consumed. The wrapped message names
	// the missing field.
	ErrMissingToken = errors.New("missing token")
	// ErrUnexpectedToken is returned when a token is present but of the
	// wrong kind for the field being parsed.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnterminatedQuote is returned when a quoted string never closes.
	ErrUnterminatedQuote = errors.New("unterminated quoted string")
)

// MissingToken builds an ErrMissingToken naming the absent field.
func MissingToken(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingToken, field)
}

// UnexpectedToken builds an ErrUnexpectedToken carrying the offending token.
func UnexpectedToken(t Token) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedToken, t)
}

// Tokenize splits one zone-file entry into tokens. Semicolon comments are
// stripped outside quotes, parentheses act as grouping whitespace, and
// double quotes delimit KindQuoted tokens supporting \" and \\ escapes.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	var word strings.Builder
	haveWord := false

	flush := func() {
		if haveWord {
			tokens = append(tokens, CharData(word.String()))
			word.Reset()
			haveWord = false
		}
	}

	i := 0
	for i < len(line) {
		c := line[i]
		switch c {
		case ' ', '\t', '\r', '\n', '(', ')':
			flush()
			i++
		case ';':
			flush()
			return tokens, nil
		case '"':
			flush()
			text, rest, err := scanQuoted(line[i+1:])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Quoted(text))
			i = len(line) - len(rest)
		default:
			word.WriteByte(c)
			haveWord = true
			i++
		}
	}
	flush()
	return tokens, nil
}

// scanQuoted consumes a quoted string body (opening quote already consumed)
// and returns the unescaped text plus the remainder of the line after the
// closing quote.
func scanQuoted(s string) (string, string, error) {
	var text strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", "", ErrUnterminatedQuote
			}
			i++
			text.WriteByte(s[i])
		case '"':
			return text.String(), s[i+1:], nil
		default:
			text.WriteByte(s[i])
		}
	}
	return "", "", ErrUnterminatedQuote
}
