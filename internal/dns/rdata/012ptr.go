package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// PTR is a pointer record (RFC 1035 §3.3.12), most commonly the reverse
// mapping of an address back to a host name.
type PTR struct {
	target domain.Name
}

// NewPTR constructs PTR record data.
func NewPTR(target domain.Name) PTR {
	return PTR{target: target}
}

// Target returns the name the owner points at.
func (p PTR) Target() domain.Name {
	return p.target
}

// Type returns RRTypePTR.
func (p PTR) Type() domain.RRType {
	return domain.RRTypePTR
}

func readPTR(d *wire.Decoder) (PTR, error) {
	name, err := domain.ReadName(d)
	if err != nil {
		return PTR{}, fmt.Errorf("PTR target: %w", err)
	}
	return NewPTR(name), nil
}

// Emit writes the target name, lowercased in canonical form.
func (p PTR) Emit(e *wire.Encoder) error {
	return p.target.EmitWithLowercase(e, e.CanonicalNames())
}

func parsePTR(tokens []zonefile.Token, origin *domain.Name) (PTR, error) {
	name, err := nameField(tokens, 0, "target", origin)
	if err != nil {
		return PTR{}, err
	}
	return NewPTR(name), nil
}

// String returns the target name's text form.
func (p PTR) String() string {
	return p.target.String()
}

// Key returns a case-normalized form for map keys.
func (p PTR) Key() string {
	return "PTR " + p.target.Key()
}
