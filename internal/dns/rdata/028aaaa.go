package rdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// AAAA is an IPv6 host address record (RFC 3596).
type AAAA struct {
	addr [16]byte
}

// NewAAAA constructs AAAA record data from an IPv6 address.
func NewAAAA(ip net.IP) (AAAA, error) {
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return AAAA{}, fmt.Errorf("not an IPv6 address: %s", ip)
	}
	var a AAAA
	copy(a.addr[:], v6)
	return a, nil
}

// Addr returns the address as a net.IP.
func (a AAAA) Addr() net.IP {
	return net.IP(a.addr[:])
}

// Type returns RRTypeAAAA.
func (a AAAA) Type() domain.RRType {
	return domain.RRTypeAAAA
}

func readAAAA(d *wire.Decoder) (AAAA, error) {
	raw, err := d.ReadBytes(16)
	if err != nil {
		return AAAA{}, fmt.Errorf("AAAA address: %w", err)
	}
	var a AAAA
	copy(a.addr[:], raw)
	return a, nil
}

// Emit writes the sixteen address octets.
func (a AAAA) Emit(e *wire.Encoder) error {
	return e.EmitBytes(a.addr[:])
}

func parseAAAA(tokens []zonefile.Token) (AAAA, error) {
	s, err := charData(tokens, 0, "address")
	if err != nil {
		return AAAA{}, err
	}
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() != nil || ip.To16() == nil {
		return AAAA{}, fmt.Errorf("invalid AAAA address %q", s)
	}
	return NewAAAA(ip)
}

// String returns the RFC 5952 text form.
func (a AAAA) String() string {
	return a.Addr().String()
}

// Key returns a normalized form for map keys.
func (a AAAA) Key() string {
	return "AAAA " + a.String()
}
