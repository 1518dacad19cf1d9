package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// MX is mail-exchange record data (RFC 1035 §3.3.9): a 16-bit preference
// followed by the exchange host name. Lower preference wins.
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                  PREFERENCE                   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	/                   EXCHANGE                    /
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
type MX struct {
	preference uint16
	exchange   domain.Name
}

// NewMX constructs MX record data from a preference and exchange name.
func NewMX(preference uint16, exchange domain.Name) MX {
	return MX{preference: preference, exchange: exchange}
}

// Preference returns the routing preference; lower values are preferred.
func (m MX) Preference() uint16 {
	return m.preference
}

// Exchange returns the mail server name.
func (m MX) Exchange() domain.Name {
	return m.exchange
}

// Type returns RRTypeMX.
func (m MX) Type() domain.RRType {
	return domain.RRTypeMX
}

// readMX decodes the preference then the exchange name, in that order.
func readMX(d *wire.Decoder) (MX, error) {
	preference, err := d.ReadUint16()
	if err != nil {
		return MX{}, fmt.Errorf("MX preference: %w", err)
	}
	exchange, err := domain.ReadName(d)
	if err != nil {
		return MX{}, fmt.Errorf("MX exchange: %w", err)
	}
	return NewMX(preference, exchange), nil
}

// Emit writes the preference then the exchange name, mirroring decode order.
// MX is one of the RFC 4034 §6.2 types whose RDATA names are lowercased in
// canonical form; the mode is taken from the encoder once, before any bytes
// are written.
func (m MX) Emit(e *wire.Encoder) error {
	canonical := e.CanonicalNames()
	if err := e.EmitUint16(m.preference); err != nil {
		return err
	}
	return m.exchange.EmitWithLowercase(e, canonical)
}

// parseMX consumes two tokens: the preference and the exchange name.
func parseMX(tokens []zonefile.Token, origin *domain.Name) (MX, error) {
	s, err := charData(tokens, 0, "preference")
	if err != nil {
		return MX{}, err
	}
	preference, err := uint16Field(s, "preference")
	if err != nil {
		return MX{}, err
	}
	exchange, err := nameField(tokens, 1, "exchange", origin)
	if err != nil {
		return MX{}, err
	}
	return NewMX(preference, exchange), nil
}

// String returns "<preference> <exchange>".
func (m MX) String() string {
	return fmt.Sprintf("%d %s", m.preference, m.exchange)
}

// Key returns a case-normalized form for map keys and deduplication.
func (m MX) Key() string {
	return fmt.Sprintf("MX %d %s", m.preference, m.exchange.Key())
}
