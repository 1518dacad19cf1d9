package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/wire"
)

const (
	// maxLabelLength is the RFC 1035 limit for a single label.
	maxLabelLength = 63
	// maxNameLength is the RFC 1035 limit for a name in wire form,
	// counting every length octet and the root terminator.
	maxNameLength = 255

	compressionMask    = 0xC0
	compressionPointer = 0xC000
)

var (
	// ErrLabelTooLong is returned for labels over 63 octets.
	ErrLabelTooLong = errors.New("label exceeds 63 octets")
	// ErrNameTooLong is returned when a name's wire form exceeds 255 octets.
	ErrNameTooLong = errors.New("name exceeds 255 octets")
	// ErrBadPointer is returned for compression pointers that target
	// themselves or later parts of the message.
	ErrBadPointer = errors.New("invalid compression pointer")
	// ErrEmptyLabel is returned for names containing a zero-length label.
	ErrEmptyLabel = errors.New("empty label")
	// ErrRelativeName is returned when text parsing encounters a relative
	// name and no origin was supplied.
	ErrRelativeName = errors.New("relative name without origin")
)

// Name is a domain name: an ordered sequence of labels, most specific first.
// It is immutable after construction; every accessor returns copies, and
// values produced by ReadName are fully independent of the decoder buffer.
// The zero value is the root name.
type Name struct {
	labels []string
}

// NewName builds a Name from labels, validating label and total length.
// The input slice is copied.
func NewName(labels ...string) (Name, error) {
	ls := make([]string, len(labels))
	copy(ls, labels)
	n := Name{labels: ls}
	if err := n.validate(); err != nil {
		return Name{}, err
	}
	return n, nil
}

// Root returns the root name ".".
func Root() Name {
	return Name{}
}

func (n Name) validate() error {
	wireLen := 1 // root terminator
	for _, label := range n.labels {
		if label == "" {
			return ErrEmptyLabel
		}
		if len(label) > maxLabelLength {
			return fmt.Errorf("%w: %q", ErrLabelTooLong, label)
		}
		wireLen += 1 + len(label)
	}
	if wireLen > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// Labels returns a copy of the label sequence.
func (n Name) Labels() []string {
	out := make([]string, len(n.labels))
	copy(out, n.labels)
	return out
}

// IsRoot reports whether the name has no labels.
func (n Name) IsRoot() bool {
	return len(n.labels) == 0
}

// String returns the zone-file display form: dot-separated labels with a
// trailing dot, or "." for the root.
func (n Name) String() string {
	if n.IsRoot() {
		return "."
	}
	return strings.Join(n.labels, ".") + "."
}

// Key returns a lowercased form of the name suitable for use as a map key.
// Two names that are Equal always produce the same Key.
func (n Name) Key() string {
	return lowerASCII(n.String())
}

// Equal compares names using the DNS rule: label count must match and labels
// compare ASCII case-insensitively.
func (n Name) Equal(other Name) bool {
	if len(n.labels) != len(other.labels) {
		return false
	}
	for i := range n.labels {
		if !equalFoldASCII(n.labels[i], other.labels[i]) {
			return false
		}
	}
	return true
}

// lowerASCII folds 'A'-'Z' to 'a'-'z' and leaves every other byte untouched.
// This is the RFC 4034 §6.2 rule: label bytes are opaque, so Unicode-aware
// folding must not run here — it would rewrite non-ASCII bytes (and replace
// invalid UTF-8 with U+FFFD), changing the wire form.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			continue
		}
		b := []byte(s)
		for ; i < len(b); i++ {
			if b[i] >= 'A' && b[i] <= 'Z' {
				b[i] += 'a' - 'A'
			}
		}
		return string(b)
	}
	return s
}

// equalFoldASCII compares byte-wise, folding only 'A'-'Z'.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// ParseName parses zone-file name text. "." is the root and "@" is the
// origin. A trailing dot makes the name absolute; otherwise it is resolved
// relative to origin, and ErrRelativeName is returned if origin is nil.
func ParseName(s string, origin *Name) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, fmt.Errorf("empty name")
	}
	if s == "." {
		return Root(), nil
	}
	if s == "@" {
		if origin == nil {
			return Name{}, fmt.Errorf("%w: @", ErrRelativeName)
		}
		return *origin, nil
	}
	absolute := strings.HasSuffix(s, ".")
	labels := strings.Split(strings.TrimSuffix(s, "."), ".")
	for _, label := range labels {
		if label == "" {
			return Name{}, fmt.Errorf("%w in %q", ErrEmptyLabel, s)
		}
	}
	if !absolute {
		if origin == nil {
			return Name{}, fmt.Errorf("%w: %q", ErrRelativeName, s)
		}
		labels = append(labels, origin.labels...)
	}
	return NewName(labels...)
}

// ReadName decodes a name from the decoder's current position, following
// compression pointers through the enclosing message. The primary cursor
// advances past the name as it appears in place (pointer jumps consume only
// the two pointer bytes). Labels are copied; the result never aliases the
// message buffer.
func ReadName(d *wire.Decoder) (Name, error) {
	var labels []string
	cur := d
	wireLen := 1
	for {
		start := cur.Offset()
		length, err := cur.ReadUint8()
		if err != nil {
			return Name{}, fmt.Errorf("reading label length: %w", err)
		}
		switch {
		case length == 0:
			n := Name{labels: labels}
			if err := n.validate(); err != nil {
				return Name{}, err
			}
			return n, nil
		case length&compressionMask == compressionMask:
			low, err := cur.ReadUint8()
			if err != nil {
				return Name{}, fmt.Errorf("reading pointer: %w", err)
			}
			ptr := int(length&^compressionMask)<<8 | int(low)
			// Pointers may only reference earlier message content.
			if ptr >= start {
				return Name{}, fmt.Errorf("%w: %d at offset %d", ErrBadPointer, ptr, start)
			}
			cur, err = cur.Fork(ptr)
			if err != nil {
				return Name{}, fmt.Errorf("%w: %v", ErrBadPointer, err)
			}
		case length&compressionMask != 0:
			return Name{}, fmt.Errorf("reserved label type 0x%02x at offset %d", length&compressionMask, start)
		default:
			raw, err := cur.ReadBytes(int(length))
			if err != nil {
				return Name{}, fmt.Errorf("reading label: %w", err)
			}
			labels = append(labels, string(raw))
			wireLen += 1 + int(length)
			// Also breaks pointer cycles the backward-only check cannot.
			if wireLen > maxNameLength {
				return Name{}, ErrNameTooLong
			}
		}
	}
}

// Emit writes the name in wire form, honoring the encoder's canonical mode.
func (n Name) Emit(e *wire.Encoder) error {
	return n.EmitWithLowercase(e, e.CanonicalNames())
}

// EmitWithLowercase writes the name in wire form. When lower is true, ASCII
// uppercase letters are lowered as bytes are written; the stored value is
// untouched. Compression reuses and extends the encoder's name table, which
// the encoder disables in canonical mode.
func (n Name) EmitWithLowercase(e *wire.Encoder, lower bool) error {
	for i := range n.labels {
		key := suffixKey(n.labels[i:])
		if off, ok := e.LookupName(key); ok {
			return e.EmitUint16(compressionPointer | uint16(off))
		}
		e.RememberName(key, e.Len())
		label := n.labels[i]
		if lower {
			label = lowerASCII(label)
		}
		if err := e.EmitUint8(uint8(len(label))); err != nil {
			return err
		}
		if err := e.EmitBytes([]byte(label)); err != nil {
			return err
		}
	}
	return e.EmitUint8(0)
}

// suffixKey is the compression-table key for a label suffix: each label
// lowercased and length-prefixed. The prefix keeps label boundaries in the
// key, so a single label containing a dot never shares an entry with the
// two-label name it displays as.
func suffixKey(labels []string) string {
	var b strings.Builder
	for _, label := range labels {
		b.WriteByte(byte(len(label)))
		b.WriteString(lowerASCII(label))
	}
	return b.String()
}
