package rdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

func TestA_ParseRejectsBadAddresses(t *testing.T) {
	for _, s := range []string{"not-an-ip", "2001:db8::1", "256.0.0.1"} {
		_, err := parseA([]zonefile.Token{zonefile.CharData(s)})
		assert.Error(t, err, "address %q", s)
	}
}

func TestAAAA_ParseRejectsBadAddresses(t *testing.T) {
	for _, s := range []string{"not-an-ip", "192.0.2.1"} {
		_, err := parseAAAA([]zonefile.Token{zonefile.CharData(s)})
		assert.Error(t, err, "address %q", s)
	}
}

func TestA_String(t *testing.T) {
	a, err := NewA(mustIP(t, "192.0.2.1"))
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.1", a.String())
	assert.Equal(t, "A 192.0.2.1", a.Key())
}

func TestNewA_RejectsIPv6(t *testing.T) {
	_, err := NewA(mustIP(t, "2001:db8::1"))
	assert.Error(t, err)
}

func TestNewAAAA_RejectsIPv4(t *testing.T) {
	_, err := NewAAAA(mustIP(t, "192.0.2.1"))
	assert.Error(t, err)
}
