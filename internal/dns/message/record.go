// Package message provides the generic resource-record envelope around the
// typed RDATA codecs: the common header fields and the RDLENGTH framing that
// the rdata layer deliberately leaves to its caller.
package message

import (
	"errors"
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/rdata"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// ErrLengthMismatch is returned when a record's RDATA codec consumed a
// different number of bytes than the record's declared RDLENGTH.
var ErrLengthMismatch = errors.New("rdata length mismatch")

// ResourceRecord is one DNS resource record: the envelope fields plus the
// decoded, typed RDATA payload.
type ResourceRecord struct {
	Name  domain.Name
	Type  domain.RRType
	Class domain.RRClass
	TTL   uint32
	Data  rdata.RData
}

// ReadRecord decodes a complete record from the decoder's current position.
// After the RDATA codec returns, the cursor is checked against the declared
// RDLENGTH: trailing or missing bytes fail with ErrLengthMismatch. This is
// the framing-layer responsibility the individual codecs do not carry.
func ReadRecord(d *wire.Decoder) (ResourceRecord, error) {
	name, err := domain.ReadName(d)
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("record name: %w", err)
	}
	rrType, err := d.ReadUint16()
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("record type: %w", err)
	}
	class, err := d.ReadUint16()
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("record class: %w", err)
	}
	ttl, err := d.ReadUint32()
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("record ttl: %w", err)
	}
	rdLength, err := d.ReadUint16()
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("record rdlength: %w", err)
	}
	start := d.Offset()
	data, err := rdata.Read(domain.RRType(rrType), d, int(rdLength))
	if err != nil {
		return ResourceRecord{}, err
	}
	if consumed := d.Offset() - start; consumed != int(rdLength) {
		return ResourceRecord{}, fmt.Errorf("%w: declared %d, consumed %d", ErrLengthMismatch, rdLength, consumed)
	}
	return ResourceRecord{
		Name:  name,
		Type:  domain.RRType(rrType),
		Class: domain.RRClass(class),
		TTL:   ttl,
		Data:  data,
	}, nil
}

// EmitRecord encodes a complete record. RDLENGTH is emitted as a placeholder
// and back-patched with the RDATA codec's actual byte count, which is why
// codecs must emit fields in exactly their decode order.
func EmitRecord(e *wire.Encoder, rr ResourceRecord) error {
	if err := rr.Name.Emit(e); err != nil {
		return fmt.Errorf("record name: %w", err)
	}
	if err := e.EmitUint16(uint16(rr.Type)); err != nil {
		return err
	}
	if err := e.EmitUint16(uint16(rr.Class)); err != nil {
		return err
	}
	if err := e.EmitUint32(rr.TTL); err != nil {
		return err
	}
	lengthOff := e.Len()
	if err := e.EmitUint16(0); err != nil {
		return err
	}
	start := e.Len()
	if err := rr.Data.Emit(e); err != nil {
		return err
	}
	n := e.Len() - start
	if n > 0xFFFF {
		return fmt.Errorf("rdata too large: %d bytes", n)
	}
	return e.PatchUint16(lengthOff, uint16(n))
}

// String returns the record as a zone-file line.
func (rr ResourceRecord) String() string {
	return fmt.Sprintf("%s %d %s %s %s", rr.Name, rr.TTL, rr.Class, rr.Type, rr.Data)
}

// Key returns the owner/type key the compiled-zone store indexes records
// under.
func (rr ResourceRecord) Key() string {
	return rr.Name.Key() + "|" + rr.Type.String()
}
