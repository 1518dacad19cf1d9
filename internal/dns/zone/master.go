// Package zone loads zone data into resource records, from RFC 1035 master
// files (via the zonefile token stream) or from structured YAML/JSON/TOML
// files (via koanf).
package zone

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/message"
	"github.com/haukened/rr-wire/internal/dns/rdata"
	"github.com/haukened/rr-wire/internal/dns/zonefile"
)

// masterState carries the mutable defaults a master file builds up as it is
// read: the current origin, the current default TTL, and the last explicit
// owner for blank-name inheritance.
type masterState struct {
	origin domain.Name
	ttl    uint32
	owner  *domain.Name
}

// ParseMaster parses an RFC 1035 master file. origin seeds $ORIGIN and
// defaultTTL seeds $TTL; both directives may override them mid-file.
// Parsing aborts on the first malformed entry.
func ParseMaster(r io.Reader, origin domain.Name, defaultTTL uint32) ([]message.ResourceRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	state := &masterState{origin: origin, ttl: defaultTTL}
	var records []message.ResourceRecord

	var pending strings.Builder
	depth := 0
	entryLine := 0
	entryIndented := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if depth == 0 {
			entryLine = lineNo
			entryIndented = strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		}
		pending.WriteString(line)
		pending.WriteByte(' ')
		depth += parenDepth(line)
		if depth > 0 {
			// open parenthesis group continues on the next line
			continue
		}
		if depth < 0 {
			return nil, fmt.Errorf("line %d: unbalanced parentheses", lineNo)
		}
		entry := pending.String()
		pending.Reset()
		rr, ok, err := parseEntry(entry, entryIndented, state)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", entryLine, err)
		}
		if ok {
			records = append(records, rr)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if depth != 0 {
		return nil, fmt.Errorf("line %d: unclosed parentheses at end of input", entryLine)
	}
	return records, nil
}

// parseEntry handles one logical entry (directive or record). ok is false
// for blank/comment-only entries and directives.
func parseEntry(entry string, indented bool, state *masterState) (message.ResourceRecord, bool, error) {
	tokens, err := zonefile.Tokenize(entry)
	if err != nil {
		return message.ResourceRecord{}, false, err
	}
	if len(tokens) == 0 {
		return message.ResourceRecord{}, false, nil
	}

	if tokens[0].Kind == zonefile.KindCharData && strings.HasPrefix(tokens[0].Text, "$") {
		return message.ResourceRecord{}, false, parseDirective(tokens, state)
	}

	idx := 0
	var owner domain.Name
	if indented {
		if state.owner == nil {
			return message.ResourceRecord{}, false, fmt.Errorf("record has no owner name and none to inherit")
		}
		owner = *state.owner
	} else {
		if tokens[0].Kind != zonefile.KindCharData {
			return message.ResourceRecord{}, false, zonefile.UnexpectedToken(tokens[0])
		}
		owner, err = domain.ParseName(tokens[0].Text, &state.origin)
		if err != nil {
			return message.ResourceRecord{}, false, fmt.Errorf("owner name: %w", err)
		}
		idx = 1
	}

	ttl := state.ttl
	class := domain.RRClassIN
	var rrType domain.RRType
	for ; idx < len(tokens); idx++ {
		if tokens[idx].Kind != zonefile.KindCharData {
			return message.ResourceRecord{}, false, zonefile.UnexpectedToken(tokens[idx])
		}
		text := tokens[idx].Text
		// TTL and class may appear in either order before the type.
		if v, err := strconv.ParseUint(text, 10, 32); err == nil {
			ttl = uint32(v)
			continue
		}
		if c := domain.RRClassFromString(text); c != 0 {
			class = c
			continue
		}
		if t := domain.RRTypeFromString(text); t != 0 {
			rrType = t
			idx++
			break
		}
		return message.ResourceRecord{}, false, fmt.Errorf("unknown record type %q", text)
	}
	if rrType == 0 {
		return message.ResourceRecord{}, false, fmt.Errorf("record is missing a type")
	}

	data, err := rdata.Parse(rrType, tokens[idx:], &state.origin)
	if err != nil {
		return message.ResourceRecord{}, false, err
	}
	state.owner = &owner
	return message.ResourceRecord{
		Name:  owner,
		Type:  rrType,
		Class: class,
		TTL:   ttl,
		Data:  data,
	}, true, nil
}

func parseDirective(tokens []zonefile.Token, state *masterState) error {
	switch strings.ToUpper(tokens[0].Text) {
	case "$ORIGIN":
		if len(tokens) < 2 {
			return zonefile.MissingToken("origin")
		}
		origin, err := domain.ParseName(tokens[1].Text, &state.origin)
		if err != nil {
			return fmt.Errorf("$ORIGIN: %w", err)
		}
		state.origin = origin
		return nil
	case "$TTL":
		if len(tokens) < 2 {
			return zonefile.MissingToken("ttl")
		}
		v, err := strconv.ParseUint(tokens[1].Text, 10, 32)
		if err != nil {
			return fmt.Errorf("$TTL: %w", err)
		}
		state.ttl = uint32(v)
		return nil
	default:
		return fmt.Errorf("unknown directive %s", tokens[0].Text)
	}
}

// parenDepth returns the net parenthesis nesting change of one physical
// line, ignoring parentheses inside quotes or behind a comment.
func parenDepth(line string) int {
	depth := 0
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			if inQuote {
				i++
			}
		case '"':
			inQuote = !inQuote
		case ';':
			if !inQuote {
				return depth
			}
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
			}
		}
	}
	return depth
}
