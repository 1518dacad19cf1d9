package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// CNAME is a canonical-name record (RFC 1035 §3.3.1): an alias target.
type CNAME struct {
	target domain.Name
}

// NewCNAME constructs CNAME record data.
func NewCNAME(target domain.Name) CNAME {
	return CNAME{target: target}
}

// Target returns the canonical name the owner aliases.
func (c CNAME) Target() domain.Name {
	return c.target
}

// Type returns RRTypeCNAME.
func (c CNAME) Type() domain.RRType {
	return domain.RRTypeCNAME
}

func readCNAME(d *wire.Decoder) (CNAME, error) {
	name, err := domain.ReadName(d)
	if err != nil {
		return CNAME{}, fmt.Errorf("CNAME target: %w", err)
	}
	return NewCNAME(name), nil
}

// Emit writes the target name, lowercased in canonical form.
func (c CNAME) Emit(e *wire.Encoder) error {
	return c.target.EmitWithLowercase(e, e.CanonicalNames())
}

func parseCNAME(tokens []zonefile.Token, origin *domain.Name) (CNAME, error) {
	name, err := nameField(tokens, 0, "target", origin)
	if err != nil {
		return CNAME{}, err
	}
	return NewCNAME(name), nil
}

// String returns the target name's text form.
func (c CNAME) String() string {
	return c.target.String()
}

// Key returns a case-normalized form for map keys.
func (c CNAME) Key() string {
	return "CNAME " + c.target.Key()
}
