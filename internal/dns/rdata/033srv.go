package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// SRV is a service-location record (RFC 2782): priority, weight, port, and
// the target host.
type SRV struct {
	priority uint16
	weight   uint16
	port     uint16
	target   domain.Name
}

// NewSRV constructs SRV record data.
func NewSRV(priority, weight, port uint16, target domain.Name) SRV {
	return SRV{priority: priority, weight: weight, port: port, target: target}
}

// Priority returns the target selection priority; lower is tried first.
func (s SRV) Priority() uint16 { return s.priority }

// Weight returns the relative weight among targets of equal priority.
func (s SRV) Weight() uint16 { return s.weight }

// Port returns the service port on the target.
func (s SRV) Port() uint16 { return s.port }

// Target returns the host providing the service.
func (s SRV) Target() domain.Name { return s.target }

// Type returns RRTypeSRV.
func (s SRV) Type() domain.RRType {
	return domain.RRTypeSRV
}

func readSRV(d *wire.Decoder) (SRV, error) {
	var fields [3]uint16
	names := [3]string{"priority", "weight", "port"}
	for i := range fields {
		v, err := d.ReadUint16()
		if err != nil {
			return SRV{}, fmt.Errorf("SRV %s: %w", names[i], err)
		}
		fields[i] = v
	}
	target, err := domain.ReadName(d)
	if err != nil {
		return SRV{}, fmt.Errorf("SRV target: %w", err)
	}
	return NewSRV(fields[0], fields[1], fields[2], target), nil
}

// Emit writes the three integers then the target, mirroring decode order.
// SRV targets are lowercased in canonical form (RFC 4034 §6.2).
func (s SRV) Emit(e *wire.Encoder) error {
	canonical := e.CanonicalNames()
	for _, v := range [3]uint16{s.priority, s.weight, s.port} {
		if err := e.EmitUint16(v); err != nil {
			return err
		}
	}
	return s.target.EmitWithLowercase(e, canonical)
}

func parseSRV(tokens []zonefile.Token, origin *domain.Name) (SRV, error) {
	var fields [3]uint16
	names := [3]string{"priority", "weight", "port"}
	for i := range fields {
		raw, err := charData(tokens, i, names[i])
		if err != nil {
			return SRV{}, err
		}
		fields[i], err = uint16Field(raw, names[i])
		if err != nil {
			return SRV{}, err
		}
	}
	target, err := nameField(tokens, 3, "target", origin)
	if err != nil {
		return SRV{}, err
	}
	return NewSRV(fields[0], fields[1], fields[2], target), nil
}

// String returns the four-field zone-file form.
func (s SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", s.priority, s.weight, s.port, s.target)
}

// Key returns a case-normalized form for map keys.
func (s SRV) Key() string {
	return fmt.Sprintf("SRV %d %d %d %s", s.priority, s.weight, s.port, s.target.Key())
}
