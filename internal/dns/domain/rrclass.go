package domain

import "fmt"

// RRClass is a DNS class code. In practice everything is IN.
type RRClass uint16

// DNS class constants.
const (
	RRClassIN   RRClass = 1   // IN - Internet
	RRClassCH   RRClass = 3   // CH - Chaos
	RRClassHS   RRClass = 4   // HS - Hesiod
	RRClassNONE RRClass = 254 // NONE - No class
	RRClassANY  RRClass = 255 // ANY - Any class (query only)
)

var rrClassNames = map[RRClass]string{
	RRClassIN:   "IN",
	RRClassCH:   "CH",
	RRClassHS:   "HS",
	RRClassNONE: "NONE",
	RRClassANY:  "ANY",
}

var rrClassValues = func() map[string]RRClass {
	m := make(map[string]RRClass, len(rrClassNames))
	for c, name := range rrClassNames {
		m[name] = c
	}
	return m
}()

// IsValid returns true if the RRClass is one of the named classes.
func (c RRClass) IsValid() bool {
	_, ok := rrClassNames[c]
	return ok
}

// String returns the textual form of the class, or "CLASS<n>" for codes
// without a name.
func (c RRClass) String() string {
	if name, ok := rrClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

// RRClassFromString converts a class mnemonic to its RRClass value,
// returning 0 for unknown mnemonics.
func RRClassFromString(s string) RRClass {
	return rrClassValues[s]
}
