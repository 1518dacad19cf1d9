package rdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// A is an IPv4 host address record (RFC 1035 §3.4.1).
type A struct {
	addr [4]byte
}

// NewA constructs A record data from an IPv4 address.
func NewA(ip net.IP) (A, error) {
	v4 := ip.To4()
	if v4 == nil {
		return A{}, fmt.Errorf("not an IPv4 address: %s", ip)
	}
	var a A
	copy(a.addr[:], v4)
	return a, nil
}

// Addr returns the address as a net.IP.
func (a A) Addr() net.IP {
	return net.IP(a.addr[:])
}

// Type returns RRTypeA.
func (a A) Type() domain.RRType {
	return domain.RRTypeA
}

func readA(d *wire.Decoder) (A, error) {
	raw, err := d.ReadBytes(4)
	if err != nil {
		return A{}, fmt.Errorf("A address: %w", err)
	}
	var a A
	copy(a.addr[:], raw)
	return a, nil
}

// Emit writes the four address octets. A records carry no names, so the
// canonical mode is irrelevant here.
func (a A) Emit(e *wire.Encoder) error {
	return e.EmitBytes(a.addr[:])
}

func parseA(tokens []zonefile.Token) (A, error) {
	s, err := charData(tokens, 0, "address")
	if err != nil {
		return A{}, err
	}
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return A{}, fmt.Errorf("invalid A address %q", s)
	}
	return NewA(ip)
}

// String returns the dotted-quad form.
func (a A) String() string {
	return a.Addr().String()
}

// Key returns a normalized form for map keys.
func (a A) Key() string {
	return "A " + a.String()
}
