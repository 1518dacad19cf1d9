package zone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/message"
)

func mustName(t *testing.T, labels ...string) domain.Name {
	t.Helper()
	n, err := domain.NewName(labels...)
	require.NoError(t, err)
	return n
}

func parseMaster(t *testing.T, input string) []message.ResourceRecord {
	t.Helper()
	records, err := ParseMaster(strings.NewReader(input), mustName(t, "example", "com"), 300)
	require.NoError(t, err)
	return records
}

func TestParseMaster_BasicRecords(t *testing.T) {
	records := parseMaster(t, `
@       3600 IN MX 16 mail
mail         IN A  192.0.2.1
www.example.com. CNAME www.hosting.example.net.
`)
	require.Len(t, records, 3)

	assert.Equal(t, "example.com. 3600 IN MX 16 mail.example.com.", records[0].String())
	assert.Equal(t, "mail.example.com. 300 IN A 192.0.2.1", records[1].String())
	assert.Equal(t, "www.example.com. 300 IN CNAME www.hosting.example.net.", records[2].String())
}

func TestParseMaster_Directives(t *testing.T) {
	records := parseMaster(t, `
$TTL 7200
@ MX 10 mail
$ORIGIN sub.example.com.
@ MX 20 mail
`)
	require.Len(t, records, 2)
	assert.Equal(t, "example.com. 7200 IN MX 10 mail.example.com.", records[0].String())
	assert.Equal(t, "sub.example.com. 7200 IN MX 20 mail.sub.example.com.", records[1].String())
}

func TestParseMaster_OwnerInheritance(t *testing.T) {
	records := parseMaster(t, `
mail A 192.0.2.1
     A 192.0.2.2
	 AAAA 2001:db8::1
`)
	require.Len(t, records, 3)
	for _, rr := range records {
		assert.Equal(t, "mail.example.com.", rr.Name.String())
	}
}

func TestParseMaster_ClassAndTTLInEitherOrder(t *testing.T) {
	records := parseMaster(t, `
a IN 3600 MX 10 mail
b 3600 IN MX 10 mail
c CH TXT "chaos"
`)
	require.Len(t, records, 3)
	assert.Equal(t, uint32(3600), records[0].TTL)
	assert.Equal(t, domain.RRClassIN, records[0].Class)
	assert.Equal(t, uint32(3600), records[1].TTL)
	assert.Equal(t, domain.RRClassCH, records[2].Class)
}

func TestParseMaster_ParenthesizedEntry(t *testing.T) {
	records := parseMaster(t, `
@ IN SOA ns1 hostmaster (
        2026082701 ; serial
        7200       ; refresh
        3600       ; retry
        1209600    ; expire
        300 )      ; minimum
`)
	require.Len(t, records, 1)
	assert.Equal(t, domain.RRTypeSOA, records[0].Type)
	assert.Contains(t, records[0].String(), "2026082701 7200 3600 1209600 300")
}

func TestParseMaster_CommentsAndBlankLines(t *testing.T) {
	records := parseMaster(t, `
; zone preamble

@ MX 16 mail ; the mail host
`)
	require.Len(t, records, 1)
}

func TestParseMaster_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown type", "@ BOGUS data", "unknown record type"},
		{"missing type", "@ 3600 IN", "missing a type"},
		{"no owner to inherit", "   A 192.0.2.1", "none to inherit"},
		{"unbalanced close", "@ MX 16 mail )", "unbalanced parentheses"},
		{"unclosed group", "@ IN SOA ns1 hostmaster ( 1 2 3", "unclosed parentheses"},
		{"unknown directive", "$BOGUS value", "unknown directive"},
		{"bad rdata", "@ MX sixteen mail", "preference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaster(strings.NewReader(tt.input), mustName(t, "example", "com"), 300)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseMaster_ErrorNamesEntryLine(t *testing.T) {
	input := "@ MX 10 mail\n@ BOGUS data\n"
	_, err := ParseMaster(strings.NewReader(input), mustName(t, "example", "com"), 300)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
