package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// CAA is a certification-authority-authorization record (RFC 6844): a flags
// octet, a tag, and a value occupying the rest of the RDATA.
type CAA struct {
	flags uint8
	tag   string
	value string
}

// NewCAA constructs CAA record data. The tag carries its own length octet on
// the wire, so it is limited to 255 bytes; it must also be non-empty.
func NewCAA(flags uint8, tag, value string) (CAA, error) {
	if tag == "" {
		return CAA{}, fmt.Errorf("CAA tag must not be empty")
	}
	if len(tag) > maxCharStringLength {
		return CAA{}, fmt.Errorf("CAA tag exceeds 255 bytes (%d)", len(tag))
	}
	return CAA{flags: flags, tag: tag, value: value}, nil
}

// Flags returns the flags octet; bit 0x80 is issuer-critical.
func (c CAA) Flags() uint8 { return c.flags }

// Tag returns the property tag (issue, issuewild, iodef, ...).
func (c CAA) Tag() string { return c.tag }

// Value returns the property value.
func (c CAA) Value() string { return c.value }

// Type returns RRTypeCAA.
func (c CAA) Type() domain.RRType {
	return domain.RRTypeCAA
}

// readCAA consumes exactly rdLength bytes: the value has no terminator of
// its own, so its extent comes from the declared RDATA length.
func readCAA(d *wire.Decoder, rdLength int) (CAA, error) {
	start := d.Offset()
	flags, err := d.ReadUint8()
	if err != nil {
		return CAA{}, fmt.Errorf("CAA flags: %w", err)
	}
	tagLen, err := d.ReadUint8()
	if err != nil {
		return CAA{}, fmt.Errorf("CAA tag length: %w", err)
	}
	tag, err := d.ReadBytes(int(tagLen))
	if err != nil {
		return CAA{}, fmt.Errorf("CAA tag: %w", err)
	}
	valueLen := rdLength - (d.Offset() - start)
	if valueLen < 0 {
		return CAA{}, fmt.Errorf("CAA tag overruns declared RDATA length")
	}
	value, err := d.ReadBytes(valueLen)
	if err != nil {
		return CAA{}, fmt.Errorf("CAA value: %w", err)
	}
	return NewCAA(flags, string(tag), string(value))
}

// Emit writes flags, length-prefixed tag, then the bare value. CAA carries
// no names, so the canonical mode is irrelevant here.
func (c CAA) Emit(e *wire.Encoder) error {
	if err := e.EmitUint8(c.flags); err != nil {
		return err
	}
	if err := e.EmitUint8(uint8(len(c.tag))); err != nil {
		return err
	}
	if err := e.EmitBytes([]byte(c.tag)); err != nil {
		return err
	}
	return e.EmitBytes([]byte(c.value))
}

// parseCAA consumes three tokens: flags, tag, and the value, which may be
// quoted.
func parseCAA(tokens []zonefile.Token) (CAA, error) {
	raw, err := charData(tokens, 0, "flags")
	if err != nil {
		return CAA{}, err
	}
	flags, err := uint8Field(raw, "flags")
	if err != nil {
		return CAA{}, err
	}
	tag, err := charData(tokens, 1, "tag")
	if err != nil {
		return CAA{}, err
	}
	if len(tokens) < 3 {
		return CAA{}, zonefile.MissingToken("value")
	}
	return NewCAA(flags, tag, tokens[2].Text)
}

// String returns the zone-file form with the value quoted.
func (c CAA) String() string {
	return fmt.Sprintf("%d %s %s", c.flags, c.tag, zonefile.Quoted(c.value))
}

// Key returns a form for map keys.
func (c CAA) Key() string {
	return "CAA " + c.String()
}
