// Package rdata implements the per-record-type RDATA codecs. Each record
// kind is a small immutable value type with four operations: binary decode
// from a wire.Decoder, binary emit to a wire.Encoder (honoring the encoder's
// canonical-names mode), positional text parse from a zonefile token stream,
// and text formatting. Read and Parse dispatch over the closed set of kinds.
package rdata

import (
	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// RData is the decoded payload of one resource record. Implementations are
// immutable values: safe to share across goroutines, never mutated after
// construction.
type RData interface {
	// Type returns the record type code this value belongs to.
	Type() domain.RRType
	// Emit writes the wire form. Field order mirrors decode order exactly;
	// RDLENGTH computation depends on it.
	Emit(e *wire.Encoder) error
	// String returns the zone-file text form of the data fields.
	String() string
	// Key returns a case-normalized string usable as a map key for
	// equality and deduplication.
	Key() string
}

// wrap lifts a concrete codec result into the RData interface, keeping the
// interface nil on failure.
func wrap[T RData](v T, err error) (RData, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Read decodes RDATA of the given type from the decoder, which the caller
// has positioned at the start of the record's data. rdLength is the declared
// RDATA length; kinds whose layout is not self-terminating (TXT, CAA, and
// opaque data) consume exactly that many bytes. No codec checks for trailing
// bytes — verifying total consumption against RDLENGTH is the framing
// caller's job.
func Read(t domain.RRType, d *wire.Decoder, rdLength int) (RData, error) {
	switch t {
	case domain.RRTypeA: // 1
		return wrap(readA(d))
	case domain.RRTypeNS: // 2
		return wrap(readNS(d))
	case domain.RRTypeCNAME: // 5
		return wrap(readCNAME(d))
	case domain.RRTypeSOA: // 6
		return wrap(readSOA(d))
	case domain.RRTypePTR: // 12
		return wrap(readPTR(d))
	case domain.RRTypeMX: // 15
		return wrap(readMX(d))
	case domain.RRTypeTXT: // 16
		return wrap(readTXT(d, rdLength))
	case domain.RRTypeAAAA: // 28
		return wrap(readAAAA(d))
	case domain.RRTypeSRV: // 33
		return wrap(readSRV(d))
	case domain.RRTypeCAA: // 257
		return wrap(readCAA(d, rdLength))
	default:
		return wrap(readRaw(t, d, rdLength))
	}
}

// Parse builds RDATA of the given type from zone-file tokens. origin, when
// non-nil, resolves relative names; tokens beyond the fields a type needs
// are ignored.
func Parse(t domain.RRType, tokens []zonefile.Token, origin *domain.Name) (RData, error) {
	switch t {
	case domain.RRTypeA: // 1
		return wrap(parseA(tokens))
	case domain.RRTypeNS: // 2
		return wrap(parseNS(tokens, origin))
	case domain.RRTypeCNAME: // 5
		return wrap(parseCNAME(tokens, origin))
	case domain.RRTypeSOA: // 6
		return wrap(parseSOA(tokens, origin))
	case domain.RRTypePTR: // 12
		return wrap(parsePTR(tokens, origin))
	case domain.RRTypeMX: // 15
		return wrap(parseMX(tokens, origin))
	case domain.RRTypeTXT: // 16
		return wrap(parseTXT(tokens))
	case domain.RRTypeAAAA: // 28
		return wrap(parseAAAA(tokens))
	case domain.RRTypeSRV: // 33
		return wrap(parseSRV(tokens, origin))
	case domain.RRTypeCAA: // 257
		return wrap(parseCAA(tokens))
	default:
		return parseNotImplemented(t)
	}
}
