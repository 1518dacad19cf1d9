package rdata

import (
	"fmt"
	"strconv"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// charData returns the text of tokens[idx], failing with a missing-token
// error naming field when the stream is exhausted, or an unexpected-token
// error when the token is not character data.
func charData(tokens []zonefile.Token, idx int, field string) (string, error) {
	if idx >= len(tokens) {
		return "", zonefile.MissingToken(field)
	}
	if tokens[idx].Kind != zonefile.KindCharData {
		return "", zonefile.UnexpectedToken(tokens[idx])
	}
	return tokens[idx].Text, nil
}

// nameField parses tokens[idx] as a domain name, relative names resolving
// against origin.
func nameField(tokens []zonefile.Token, idx int, field string, origin *domain.Name) (domain.Name, error) {
	s, err := charData(tokens, idx, field)
	if err != nil {
		return domain.Name{}, err
	}
	n, err := domain.ParseName(s, origin)
	if err != nil {
		return domain.Name{}, fmt.Errorf("invalid %s: %w", field, err)
	}
	return n, nil
}

func uint8Field(s, field string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return uint8(v), nil
}

func uint16Field(s, field string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return uint16(v), nil
}

func uint32Field(s, field string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return uint32(v), nil
}

func parseNotImplemented(t domain.RRType) (RData, error) {
	return nil, fmt.Errorf("%s record text parsing not implemented", t)
}
