package rdata

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

func mustName(t *testing.T, labels ...string) domain.Name {
	t.Helper()
	n, err := domain.NewName(labels...)
	require.NoError(t, err)
	return n
}

func mustIP(t *testing.T, s string) net.IP {
	t.Helper()
	ip := net.ParseIP(s)
	require.NotNil(t, ip)
	return ip
}

// Each supported kind survives Emit followed by Read through the dispatch
// switch, with the declared length taken from the emitted bytes.
func TestRead_RoundTripsAllKinds(t *testing.T) {
	a, err := NewA(mustIP(t, "192.0.2.1"))
	require.NoError(t, err)
	aaaa, err := NewAAAA(mustIP(t, "2001:db8::1"))
	require.NoError(t, err)
	txt, err := NewTXT("v=spf1 -all", "second")
	require.NoError(t, err)
	caa, err := NewCAA(0, "issue", "ca.example.net")
	require.NoError(t, err)

	values := []RData{
		a,
		NewNS(mustName(t, "ns1", "example", "com")),
		NewCNAME(mustName(t, "www", "example", "com")),
		NewSOA(mustName(t, "ns1", "example", "com"), mustName(t, "hostmaster", "example", "com"),
			2026082701, 7200, 3600, 1209600, 300),
		NewPTR(mustName(t, "host", "example", "com")),
		NewMX(16, mustName(t, "mail", "example", "com")),
		txt,
		aaaa,
		NewSRV(10, 60, 5060, mustName(t, "sip", "example", "com")),
		caa,
		NewRaw(domain.RRType(99), []byte{0xDE, 0xAD, 0xBE, 0xEF}),
	}
	for _, v := range values {
		t.Run(v.Type().String(), func(t *testing.T) {
			e := wire.NewEncoder()
			require.NoError(t, v.Emit(e))

			d := wire.NewDecoder(e.Bytes())
			back, err := Read(v.Type(), d, e.Len())
			require.NoError(t, err)
			assert.Equal(t, v, back)
			assert.Equal(t, e.Len(), d.Offset(), "decode must consume everything it emitted")
		})
	}
}

func TestRead_UnknownTypeIsOpaque(t *testing.T) {
	payload := []byte{1, 2, 3}
	back, err := Read(domain.RRType(99), wire.NewDecoder(payload), len(payload))
	require.NoError(t, err)

	raw, ok := back.(Raw)
	require.True(t, ok)
	assert.Equal(t, domain.RRType(99), raw.Type())
	assert.Equal(t, payload, raw.Data())
}

func TestRead_ErrorKeepsInterfaceNil(t *testing.T) {
	back, err := Read(domain.RRTypeMX, wire.NewDecoder(nil), 0)
	require.Error(t, err)
	assert.Nil(t, back)
}

func TestParse_DispatchesByType(t *testing.T) {
	origin := mustName(t, "example", "com")

	tests := []struct {
		rrType domain.RRType
		line   string
		want   string
	}{
		{domain.RRTypeA, "192.0.2.1", "192.0.2.1"},
		{domain.RRTypeNS, "ns1", "ns1.example.com."},
		{domain.RRTypeCNAME, "www.example.com.", "www.example.com."},
		{domain.RRTypeSOA, "ns1 hostmaster 2026082701 7200 3600 1209600 300",
			"ns1.example.com. hostmaster.example.com. 2026082701 7200 3600 1209600 300"},
		{domain.RRTypePTR, "host.example.com.", "host.example.com."},
		{domain.RRTypeMX, "16 mail", "16 mail.example.com."},
		{domain.RRTypeTXT, `"v=spf1 -all"`, `"v=spf1 -all"`},
		{domain.RRTypeAAAA, "2001:db8::1", "2001:db8::1"},
		{domain.RRTypeSRV, "10 60 5060 sip", "10 60 5060 sip.example.com."},
		{domain.RRTypeCAA, `0 issue "ca.example.net"`, `0 issue "ca.example.net"`},
	}
	for _, tt := range tests {
		t.Run(tt.rrType.String(), func(t *testing.T) {
			tokens, err := zonefile.Tokenize(tt.line)
			require.NoError(t, err)

			got, err := Parse(tt.rrType, tokens, &origin)
			require.NoError(t, err)
			assert.Equal(t, tt.rrType, got.Type())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParse_UnknownTypeFails(t *testing.T) {
	_, err := Parse(domain.RRType(99), []zonefile.Token{zonefile.CharData("x")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYPE99")
}

func TestCanonicalEmit_LowersOnlyNameKinds(t *testing.T) {
	// name-bearing kinds lower their names in canonical form
	upper := NewNS(mustName(t, "NS1", "Example", "com"))
	lower := NewNS(mustName(t, "ns1", "example", "com"))

	ue := wire.NewCanonicalEncoder()
	require.NoError(t, upper.Emit(ue))
	le := wire.NewCanonicalEncoder()
	require.NoError(t, lower.Emit(le))
	assert.Equal(t, le.Bytes(), ue.Bytes())

	// TXT content is not a name; its case always survives
	txt, err := NewTXT("MixedCase")
	require.NoError(t, err)
	te := wire.NewCanonicalEncoder()
	require.NoError(t, txt.Emit(te))
	assert.Contains(t, string(te.Bytes()), "MixedCase")
}
