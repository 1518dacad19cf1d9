// Package utils holds small name-normalization helpers shared by the zone
// loaders and the CLI.
package utils

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeDNSName lowercases a name, trims surrounding whitespace, and
// strips trailing dots. Used wherever names become string map keys or file
// identifiers.
func NormalizeDNSName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name
}

// ApexDomain returns the registrable apex (eTLD+1) of a name, falling back
// to the normalized input when the public suffix list cannot place it.
func ApexDomain(name string) string {
	name = NormalizeDNSName(name)
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return name
	}
	return apex
}
