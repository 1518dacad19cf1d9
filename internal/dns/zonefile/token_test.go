package zonefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Token
	}{
		{"empty", "", nil},
		{"whitespace only", " \t ", nil},
		{"bare words", "16 mail.example.com.", []Token{CharData("16"), CharData("mail.example.com.")}},
		{"comment stripped", "16 mail ; preference and host", []Token{CharData("16"), CharData("mail")}},
		{"comment only", "; nothing here", nil},
		{"quoted string", `"v=spf1 -all"`, []Token{Quoted("v=spf1 -all")}},
		{"quoted keeps semicolons", `"a;b"`, []Token{Quoted("a;b")}},
		{"escaped quote", `"say \"hi\""`, []Token{Quoted(`say "hi"`)}},
		{"escaped backslash", `"a\\b"`, []Token{Quoted(`a\b`)}},
		{"empty quoted", `""`, []Token{Quoted("")}},
		{"parens are whitespace", "( 1 2 )", []Token{CharData("1"), CharData("2")}},
		{"mixed", `0 issue "ca.example.net"`, []Token{CharData("0"), CharData("issue"), Quoted("ca.example.net")}},
		{"adjacent quote ends word", `abc"def"`, []Token{CharData("abc"), Quoted("def")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_UnterminatedQuote(t *testing.T) {
	for _, line := range []string{`"open`, `"trailing escape\`, `ok "open`} {
		_, err := Tokenize(line)
		assert.ErrorIs(t, err, ErrUnterminatedQuote, "line %q", line)
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "plain", CharData("plain").String())
	assert.Equal(t, `"quoted"`, Quoted("quoted").String())
	assert.Equal(t, `"a \"b\""`, Quoted(`a "b"`).String())
}

func TestMissingToken(t *testing.T) {
	err := MissingToken("preference")
	require.ErrorIs(t, err, ErrMissingToken)
	assert.Contains(t, err.Error(), "preference")
}

func TestUnexpectedToken(t *testing.T) {
	err := UnexpectedToken(Quoted("16"))
	require.ErrorIs(t, err, ErrUnexpectedToken)
	assert.Contains(t, err.Error(), `"16"`)
}
