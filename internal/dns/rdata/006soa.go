package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// SOA is a start-of-authority record (RFC 1035 §3.3.13): the primary server,
// the responsible mailbox, and the zone's timing parameters.
type SOA struct {
	mname   domain.Name
	rname   domain.Name
	serial  uint32
	refresh uint32
	retry   uint32
	expire  uint32
	minimum uint32
}

// NewSOA constructs SOA record data.
func NewSOA(mname, rname domain.Name, serial, refresh, retry, expire, minimum uint32) SOA {
	return SOA{
		mname:   mname,
		rname:   rname,
		serial:  serial,
		refresh: refresh,
		retry:   retry,
		expire:  expire,
		minimum: minimum,
	}
}

// MName returns the primary name server for the zone.
func (s SOA) MName() domain.Name { return s.mname }

// RName returns the responsible party's mailbox encoded as a name.
func (s SOA) RName() domain.Name { return s.rname }

// Serial returns the zone serial number.
func (s SOA) Serial() uint32 { return s.serial }

// Refresh returns the secondary refresh interval in seconds.
func (s SOA) Refresh() uint32 { return s.refresh }

// Retry returns the failed-refresh retry interval in seconds.
func (s SOA) Retry() uint32 { return s.retry }

// Expire returns how long secondaries may serve the zone unrefreshed.
func (s SOA) Expire() uint32 { return s.expire }

// Minimum returns the negative-caching TTL.
func (s SOA) Minimum() uint32 { return s.minimum }

// Type returns RRTypeSOA.
func (s SOA) Type() domain.RRType {
	return domain.RRTypeSOA
}

func readSOA(d *wire.Decoder) (SOA, error) {
	mname, err := domain.ReadName(d)
	if err != nil {
		return SOA{}, fmt.Errorf("SOA mname: %w", err)
	}
	rname, err := domain.ReadName(d)
	if err != nil {
		return SOA{}, fmt.Errorf("SOA rname: %w", err)
	}
	var fields [5]uint32
	names := [5]string{"serial", "refresh", "retry", "expire", "minimum"}
	for i := range fields {
		fields[i], err = d.ReadUint32()
		if err != nil {
			return SOA{}, fmt.Errorf("SOA %s: %w", names[i], err)
		}
	}
	return NewSOA(mname, rname, fields[0], fields[1], fields[2], fields[3], fields[4]), nil
}

// Emit writes both names then the five timers, mirroring decode order. SOA
// names are lowercased in canonical form (RFC 4034 §6.2); the mode is read
// once before any field is written.
func (s SOA) Emit(e *wire.Encoder) error {
	canonical := e.CanonicalNames()
	if err := s.mname.EmitWithLowercase(e, canonical); err != nil {
		return err
	}
	if err := s.rname.EmitWithLowercase(e, canonical); err != nil {
		return err
	}
	for _, v := range [5]uint32{s.serial, s.refresh, s.retry, s.expire, s.minimum} {
		if err := e.EmitUint32(v); err != nil {
			return err
		}
	}
	return nil
}

func parseSOA(tokens []zonefile.Token, origin *domain.Name) (SOA, error) {
	mname, err := nameField(tokens, 0, "mname", origin)
	if err != nil {
		return SOA{}, err
	}
	rname, err := nameField(tokens, 1, "rname", origin)
	if err != nil {
		return SOA{}, err
	}
	var fields [5]uint32
	names := [5]string{"serial", "refresh", "retry", "expire", "minimum"}
	for i := range fields {
		s, err := charData(tokens, 2+i, names[i])
		if err != nil {
			return SOA{}, err
		}
		fields[i], err = uint32Field(s, names[i])
		if err != nil {
			return SOA{}, err
		}
	}
	return NewSOA(mname, rname, fields[0], fields[1], fields[2], fields[3], fields[4]), nil
}

// String returns the seven-field zone-file form.
func (s SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		s.mname, s.rname, s.serial, s.refresh, s.retry, s.expire, s.minimum)
}

// Key returns a case-normalized form for map keys.
func (s SOA) Key() string {
	return fmt.Sprintf("SOA %s %s %d %d %d %d %d",
		s.mname.Key(), s.rname.Key(), s.serial, s.refresh, s.retry, s.expire, s.minimum)
}
