// Package wire provides the binary decoder and encoder contexts shared by the
// DNS record codecs. It owns the low-level byte layout concerns of RFC 1035
// messages: network byte order integers, bounds-checked reads, and the name
// compression table used while encoding.
package wire

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when a read would run past the end of the
// decoder's buffer. Truncated input is never retried; the error propagates to
// whoever owns the message parse.
var ErrInsufficientData = errors.New("insufficient data")

// Decoder is a sequential cursor over a DNS message buffer. The record codecs
// trust their caller to position the cursor at the start of the region they
// are expected to consume. A Decoder must not be shared across concurrent
// decode passes.
type Decoder struct {
	buf []byte
	off int
}

// NewDecoder returns a Decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Offset returns the cursor position relative to the start of the buffer.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.off
}

// Fork returns a new Decoder over the same buffer positioned at off. Name
// decompression uses this to chase pointers into earlier parts of the message
// without disturbing the primary cursor.
func (d *Decoder) Fork(off int) (*Decoder, error) {
	if off < 0 || off >= len(d.buf) {
		return nil, fmt.Errorf("fork offset %d out of range (buffer is %d bytes)", off, len(d.buf))
	}
	return &Decoder{buf: d.buf, off: off}, nil
}

// ReadUint8 reads a single byte.
func (d *Decoder) ReadUint8() (uint8, error) {
	if d.Remaining() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte, have %d", ErrInsufficientData, d.Remaining())
	}
	v := d.buf[d.off]
	d.off++
	return v, nil
}

// ReadUint16 reads a 16-bit unsigned integer in network byte order.
func (d *Decoder) ReadUint16() (uint16, error) {
	if d.Remaining() < 2 {
		return 0, fmt.Errorf("%w: need 2 bytes, have %d", ErrInsufficientData, d.Remaining())
	}
	v := uint16(d.buf[d.off])<<8 | uint16(d.buf[d.off+1])
	d.off += 2
	return v, nil
}

// ReadUint32 reads a 32-bit unsigned integer in network byte order.
func (d *Decoder) ReadUint32() (uint32, error) {
	if d.Remaining() < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes, have %d", ErrInsufficientData, d.Remaining())
	}
	v := uint32(d.buf[d.off])<<24 |
		uint32(d.buf[d.off+1])<<16 |
		uint32(d.buf[d.off+2])<<8 |
		uint32(d.buf[d.off+3])
	d.off += 4
	return v, nil
}

// ReadBytes reads exactly n bytes and returns an independent copy, so decoded
// values never alias the message buffer.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	if d.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientData, n, d.Remaining())
	}
	out := make([]byte, n)
	copy(out, d.buf[d.off:d.off+n])
	d.off += n
	return out, nil
}
