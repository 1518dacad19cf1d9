package rdata

import (
	"encoding/hex"
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// Raw is the opaque RDATA of a record type outside the codec set. It
// preserves the bytes untouched so unknown types survive a decode/encode
// round trip (RFC 3597 handling).
type Raw struct {
	rrType domain.RRType
	data   []byte
}

// NewRaw constructs opaque record data. The byte slice is copied.
func NewRaw(t domain.RRType, data []byte) Raw {
	out := make([]byte, len(data))
	copy(out, data)
	return Raw{rrType: t, data: out}
}

// Data returns a copy of the opaque bytes.
func (r Raw) Data() []byte {
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out
}

// Type returns the original record type code.
func (r Raw) Type() domain.RRType {
	return r.rrType
}

func readRaw(t domain.RRType, d *wire.Decoder, rdLength int) (Raw, error) {
	data, err := d.ReadBytes(rdLength)
	if err != nil {
		return Raw{}, fmt.Errorf("%s data: %w", t, err)
	}
	return Raw{rrType: t, data: data}, nil
}

// Emit writes the bytes verbatim. Canonical mode cannot apply: the layout is
// unknown, so no names can be identified inside it.
func (r Raw) Emit(e *wire.Encoder) error {
	return e.EmitBytes(r.data)
}

// String returns the RFC 3597 generic text form: `\# <length> <hex>`.
func (r Raw) String() string {
	if len(r.data) == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %s`, len(r.data), hex.EncodeToString(r.data))
}

// Key returns a form for map keys.
func (r Raw) Key() string {
	return fmt.Sprintf("%s %s", r.rrType, r.String())
}
