package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// NS is a name-server record (RFC 1035 §3.3.11): a single host name.
type NS struct {
	nameserver domain.Name
}

// NewNS constructs NS record data.
func NewNS(nameserver domain.Name) NS {
	return NS{nameserver: nameserver}
}

// Nameserver returns the authoritative server name.
func (n NS) Nameserver() domain.Name {
	return n.nameserver
}

// Type returns RRTypeNS.
func (n NS) Type() domain.RRType {
	return domain.RRTypeNS
}

func readNS(d *wire.Decoder) (NS, error) {
	name, err := domain.ReadName(d)
	if err != nil {
		return NS{}, fmt.Errorf("NS nameserver: %w", err)
	}
	return NewNS(name), nil
}

// Emit writes the server name. NS names are lowercased in canonical form
// (RFC 4034 §6.2).
func (n NS) Emit(e *wire.Encoder) error {
	return n.nameserver.EmitWithLowercase(e, e.CanonicalNames())
}

func parseNS(tokens []zonefile.Token, origin *domain.Name) (NS, error) {
	name, err := nameField(tokens, 0, "nameserver", origin)
	if err != nil {
		return NS{}, err
	}
	return NewNS(name), nil
}

// String returns the server name's text form.
func (n NS) String() string {
	return n.nameserver.String()
}

// Key returns a case-normalized form for map keys.
func (n NS) Key() string {
	return "NS " + n.nameserver.Key()
}
