package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/rdata"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

func mustName(t *testing.T, labels ...string) domain.Name {
	t.Helper()
	n, err := domain.NewName(labels...)
	require.NoError(t, err)
	return n
}

func mxRecord(t *testing.T) ResourceRecord {
	t.Helper()
	return ResourceRecord{
		Name:  mustName(t, "example", "com"),
		Type:  domain.RRTypeMX,
		Class: domain.RRClassIN,
		TTL:   3600,
		Data:  rdata.NewMX(16, mustName(t, "mail", "example", "com")),
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	rr := mxRecord(t)

	e := wire.NewEncoder()
	require.NoError(t, EmitRecord(e, rr))

	d := wire.NewDecoder(e.Bytes())
	back, err := ReadRecord(d)
	require.NoError(t, err)

	assert.Equal(t, rr, back)
	assert.Equal(t, e.Len(), d.Offset())
}

func TestRecord_RdlengthBackPatch(t *testing.T) {
	rr := mxRecord(t)
	e := wire.NewEncoder()
	require.NoError(t, EmitRecord(e, rr))

	// owner example.com. is 13 bytes; type/class/ttl/rdlength another 10.
	// MX rdata compresses its exchange against the owner: 2 (preference)
	// + 5 (mail label) + 2 (pointer) = 9.
	buf := e.Bytes()
	rdLength := int(buf[21])<<8 | int(buf[22])
	assert.Equal(t, 9, rdLength)
	assert.Equal(t, 23+rdLength, len(buf))
}

func TestReadRecord_LengthMismatch(t *testing.T) {
	rr := mxRecord(t)
	e := wire.NewEncoder()
	require.NoError(t, EmitRecord(e, rr))

	buf := e.Bytes()
	// inflate the declared RDLENGTH past what the codec consumes
	buf[22]++
	_, err := ReadRecord(wire.NewDecoder(buf))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestReadRecord_Truncated(t *testing.T) {
	rr := mxRecord(t)
	e := wire.NewEncoder()
	require.NoError(t, EmitRecord(e, rr))

	full := e.Bytes()
	for n := 0; n < len(full); n++ {
		_, err := ReadRecord(wire.NewDecoder(full[:n]))
		assert.Error(t, err, "prefix of %d bytes", n)
	}
}

func TestRecord_String(t *testing.T) {
	rr := mxRecord(t)
	assert.Equal(t, "example.com. 3600 IN MX 16 mail.example.com.", rr.String())
}

func TestRecord_Key(t *testing.T) {
	a := mxRecord(t)
	b := mxRecord(t)
	b.Name = mustName(t, "EXAMPLE", "com")
	assert.Equal(t, a.Key(), b.Key(), "owner case does not split the key")
	assert.Equal(t, "example.com.|MX", a.Key())

	b.Type = domain.RRTypeA
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestEmitRecord_CanonicalFormIsStable(t *testing.T) {
	mixed := ResourceRecord{
		Name:  mustName(t, "Example", "com"),
		Type:  domain.RRTypeMX,
		Class: domain.RRClassIN,
		TTL:   3600,
		Data:  rdata.NewMX(16, mustName(t, "Mail", "Example", "com")),
	}
	lower := ResourceRecord{
		Name:  mustName(t, "example", "com"),
		Type:  domain.RRTypeMX,
		Class: domain.RRClassIN,
		TTL:   3600,
		Data:  rdata.NewMX(16, mustName(t, "mail", "example", "com")),
	}

	me := wire.NewCanonicalEncoder()
	require.NoError(t, EmitRecord(me, mixed))
	le := wire.NewCanonicalEncoder()
	require.NoError(t, EmitRecord(le, lower))
	assert.Equal(t, le.Bytes(), me.Bytes())
}
