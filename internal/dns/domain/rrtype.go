package domain

import "fmt"

// RRType is a DNS resource record type code (IANA DNS Parameters).
type RRType uint16

// Record type codes understood by this library. The codec set in
// internal/dns/rdata is closed over these; anything else round-trips as
// opaque RFC 3597 data.
const (
	RRTypeA     RRType = 1   // A - IPv4 address
	RRTypeNS    RRType = 2   // NS - Name server
	RRTypeCNAME RRType = 5   // CNAME - Canonical name
	RRTypeSOA   RRType = 6   // SOA - Start of authority
	RRTypePTR   RRType = 12  // PTR - Pointer
	RRTypeMX    RRType = 15  // MX - Mail exchange
	RRTypeTXT   RRType = 16  // TXT - Text
	RRTypeAAAA  RRType = 28  // AAAA - IPv6 address
	RRTypeSRV   RRType = 33  // SRV - Service
	RRTypeANY   RRType = 255 // ANY - Any type (query only)
	RRTypeCAA   RRType = 257 // CAA - Certificate authority authorization
)

var rrTypeNames = map[RRType]string{
	RRTypeA:     "A",
	RRTypeNS:    "NS",
	RRTypeCNAME: "CNAME",
	RRTypeSOA:   "SOA",
	RRTypePTR:   "PTR",
	RRTypeMX:    "MX",
	RRTypeTXT:   "TXT",
	RRTypeAAAA:  "AAAA",
	RRTypeSRV:   "SRV",
	RRTypeANY:   "ANY",
	RRTypeCAA:   "CAA",
}

var rrTypeValues = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for t, name := range rrTypeNames {
		m[name] = t
	}
	return m
}()

// IsValid returns true if the RRType is one of the named types above.
func (t RRType) IsValid() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the textual form of the type, or "TYPE<n>" (RFC 3597
// convention) for codes without a name.
func (t RRType) String() string {
	if name, ok := rrTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// RRTypeFromString converts a record type mnemonic to its RRType value,
// returning 0 for unknown mnemonics.
func RRTypeFromString(s string) RRType {
	return rrTypeValues[s]
}
