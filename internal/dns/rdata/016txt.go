package rdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// maxCharStringLength is the RFC 1035 <character-string> limit: one length
// octet, so at most 255 bytes of content.
const maxCharStringLength = 255

// TXT is descriptive text (RFC 1035 §3.3.14): one or more character-strings.
type TXT struct {
	segments []string
}

// NewTXT constructs TXT record data, validating each segment against the
// 255-byte character-string limit. The input slice is copied.
func NewTXT(segments ...string) (TXT, error) {
	if len(segments) == 0 {
		return TXT{}, fmt.Errorf("TXT requires at least one character-string")
	}
	out := make([]string, len(segments))
	for i, s := range segments {
		if len(s) > maxCharStringLength {
			return TXT{}, fmt.Errorf("TXT character-string exceeds 255 bytes (%d)", len(s))
		}
		out[i] = s
	}
	return TXT{segments: out}, nil
}

// Segments returns a copy of the character-strings.
func (t TXT) Segments() []string {
	out := make([]string, len(t.segments))
	copy(out, t.segments)
	return out
}

// Type returns RRTypeTXT.
func (t TXT) Type() domain.RRType {
	return domain.RRTypeTXT
}

// readTXT consumes exactly rdLength bytes of length-prefixed strings. The
// layout is not self-terminating, so the declared RDATA length bounds the
// loop.
func readTXT(d *wire.Decoder, rdLength int) (TXT, error) {
	start := d.Offset()
	var segments []string
	for d.Offset()-start < rdLength {
		length, err := d.ReadUint8()
		if err != nil {
			return TXT{}, fmt.Errorf("TXT string length: %w", err)
		}
		raw, err := d.ReadBytes(int(length))
		if err != nil {
			return TXT{}, fmt.Errorf("TXT string: %w", err)
		}
		segments = append(segments, string(raw))
	}
	return NewTXT(segments...)
}

// Emit writes each character-string with its length prefix.
func (t TXT) Emit(e *wire.Encoder) error {
	for _, s := range t.segments {
		if err := e.EmitUint8(uint8(len(s))); err != nil {
			return err
		}
		if err := e.EmitBytes([]byte(s)); err != nil {
			return err
		}
	}
	return nil
}

// parseTXT consumes every remaining token; quoted and bare tokens are both
// accepted, each becoming one character-string.
func parseTXT(tokens []zonefile.Token) (TXT, error) {
	if len(tokens) == 0 {
		return TXT{}, zonefile.MissingToken("text")
	}
	segments := make([]string, len(tokens))
	for i, tok := range tokens {
		segments[i] = tok.Text
	}
	return NewTXT(segments...)
}

// String returns the segments as quoted strings separated by spaces.
func (t TXT) String() string {
	quoted := make([]string, len(t.segments))
	for i, s := range t.segments {
		quoted[i] = zonefile.Quoted(s).String()
	}
	return strings.Join(quoted, " ")
}

// Key returns a form for map keys. TXT comparison is case-sensitive.
func (t TXT) Key() string {
	return "TXT " + t.String()
}
