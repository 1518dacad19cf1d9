package wire

import (
	"errors"
	"fmt"
)

// ErrSizeLimitExceeded is returned by emit operations once the encoder's
// configured size limit would be passed. The write is rejected whole; the
// encoder never truncates a field.
var ErrSizeLimitExceeded = errors.New("message size limit exceeded")

// maxCompressionOffset is the largest buffer offset a 14-bit compression
// pointer can address. Names that begin past it are emitted in full and never
// registered in the table.
const maxCompressionOffset = 0x3FFF

// Encoder is an append-only byte sink for DNS wire output. It carries the two
// pieces of per-pass shared state the record codecs need: the name
// compression table and the canonical-names mode.
//
// Canonical mode is fixed at construction and never changes mid-pass, which
// is what lets a codec query it once per record. In canonical form (RFC 4034)
// names are emitted lowercased and never compressed, so the table is disabled
// entirely.
//
// An Encoder must not be shared across concurrent encode passes.
type Encoder struct {
	buf       []byte
	limit     int // 0 means unlimited
	canonical bool
	names     map[string]int
}

// NewEncoder returns an Encoder in normal (non-canonical) mode with name
// compression enabled.
func NewEncoder() *Encoder {
	return &Encoder{names: make(map[string]int)}
}

// NewCanonicalEncoder returns an Encoder in DNSSEC canonical mode: names are
// lowercased on emission and compression is disabled.
func NewCanonicalEncoder() *Encoder {
	return &Encoder{canonical: true, names: make(map[string]int)}
}

// LimitSize caps the total output size at n bytes. A limit of 0 removes the
// cap. Intended to be set before the first emit.
func (e *Encoder) LimitSize(n int) {
	e.limit = n
}

// CanonicalNames reports whether the encoder is in DNSSEC canonical mode.
func (e *Encoder) CanonicalNames() bool {
	return e.canonical
}

// Len returns the number of bytes emitted so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Bytes returns the accumulated output. The slice is owned by the encoder and
// valid until the next emit.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) room(n int) error {
	if e.limit > 0 && len(e.buf)+n > e.limit {
		return fmt.Errorf("%w: %d + %d > %d", ErrSizeLimitExceeded, len(e.buf), n, e.limit)
	}
	return nil
}

// EmitUint8 appends a single byte.
func (e *Encoder) EmitUint8(v uint8) error {
	if err := e.room(1); err != nil {
		return err
	}
	e.buf = append(e.buf, v)
	return nil
}

// EmitUint16 appends a 16-bit unsigned integer in network byte order.
func (e *Encoder) EmitUint16(v uint16) error {
	if err := e.room(2); err != nil {
		return err
	}
	e.buf = append(e.buf, byte(v>>8), byte(v))
	return nil
}

// EmitUint32 appends a 32-bit unsigned integer in network byte order.
func (e *Encoder) EmitUint32(v uint32) error {
	if err := e.room(4); err != nil {
		return err
	}
	e.buf = append(e.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	return nil
}

// EmitBytes appends b verbatim.
func (e *Encoder) EmitBytes(b []byte) error {
	if err := e.room(len(b)); err != nil {
		return err
	}
	e.buf = append(e.buf, b...)
	return nil
}

// PatchUint16 overwrites two already-emitted bytes at off with v in network
// byte order. Used to back-fill RDLENGTH once a record's data has been
// emitted and its true size is known.
func (e *Encoder) PatchUint16(off int, v uint16) error {
	if off < 0 || off+2 > len(e.buf) {
		return fmt.Errorf("patch offset %d out of range (have %d bytes)", off, len(e.buf))
	}
	e.buf[off] = byte(v >> 8)
	e.buf[off+1] = byte(v)
	return nil
}

// LookupName returns the buffer offset a name suffix was previously emitted
// at, if compression may reuse it. Always misses in canonical mode.
func (e *Encoder) LookupName(key string) (int, bool) {
	if e.canonical {
		return 0, false
	}
	off, ok := e.names[key]
	return off, ok
}

// RememberName registers the offset a name suffix is being emitted at, so
// later names can point back to it. Offsets beyond pointer range and all
// offsets in canonical mode are dropped.
func (e *Encoder) RememberName(key string, off int) {
	if e.canonical || off > maxCompressionOffset {
		return
	}
	if _, exists := e.names[key]; !exists {
		e.names[key] = off
	}
}
