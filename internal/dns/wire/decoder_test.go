package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_ReadsInNetworkByteOrder(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	u8, err := d.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), u8)

	u16, err := d.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), u16)

	u32, err := d.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04050607), u32)

	assert.Equal(t, 7, d.Offset())
	assert.Equal(t, 1, d.Remaining())
}

func TestDecoder_InsufficientData(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		read func(d *Decoder) error
	}{
		{"uint8 from empty", nil, func(d *Decoder) error { _, err := d.ReadUint8(); return err }},
		{"uint16 from one byte", []byte{0x01}, func(d *Decoder) error { _, err := d.ReadUint16(); return err }},
		{"uint32 from three bytes", []byte{1, 2, 3}, func(d *Decoder) error { _, err := d.ReadUint32(); return err }},
		{"bytes past end", []byte{1, 2}, func(d *Decoder) error { _, err := d.ReadBytes(3); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(NewDecoder(tt.buf))
			require.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestDecoder_ReadBytesCopies(t *testing.T) {
	buf := []byte{0xAA, 0xBB}
	d := NewDecoder(buf)
	out, err := d.ReadBytes(2)
	require.NoError(t, err)

	buf[0] = 0x00
	assert.Equal(t, []byte{0xAA, 0xBB}, out, "read bytes must not alias the buffer")
}

func TestDecoder_Fork(t *testing.T) {
	d := NewDecoder([]byte{0x10, 0x20, 0x30})
	_, err := d.ReadBytes(2)
	require.NoError(t, err)

	f, err := d.Fork(1)
	require.NoError(t, err)
	v, err := f.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x20), v)
	// forked cursor does not disturb the primary
	assert.Equal(t, 2, d.Offset())

	_, err = d.Fork(3)
	assert.Error(t, err)
	_, err = d.Fork(-1)
	assert.Error(t, err)
}
