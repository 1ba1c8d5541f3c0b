// Package uid holds the DICOM UID value type, its wire encoding and the
// process registry that maps UID strings to their descriptive entries.
//
// UID encoding rules are defined in DICOM Part 5, Section 9.1:
// https://dicom.nema.org/medical/dicom/current/output/chtml/part05/chapter_9.html
package uid

import "strings"

// MaxLength is the longest UID string allowed on the wire.
const MaxLength = 64

// UnknownPrefix starts the description of every placeholder synthesized for
// an unrecognized UID.
const UnknownPrefix = "Unknown: "

// Identified is implemented by every entry a Registry can hold.
type Identified interface {
	UID() string
	Description() string
}

// Entry is an immutable UID plus its human-readable description.
// Identity is the UID string alone.
type Entry struct {
	Value string
	Desc  string

	placeholder bool
}

// New returns an Entry whose description is the UID string itself.
func New(value string) Entry {
	return Entry{Value: value, Desc: value}
}

// UID returns the dot-separated identifier.
func (u Entry) UID() string { return u.Value }

// Description returns the descriptive name.
func (u Entry) Description() string { return u.Desc }

// Known reports whether the entry came from a table rather than being
// synthesized by Placeholder for an unrecognized UID.
func (u Entry) Known() bool {
	return !u.placeholder
}

// Equal compares two entries by their UID string.
func (u Entry) Equal(other Identified) bool {
	return other != nil && u.Value == other.UID()
}

// String returns "uid (description)", or the bare uid when there is nothing
// more to say about it.
func (u Entry) String() string {
	if u.Desc == "" || u.Desc == u.Value {
		return u.Value
	}
	return u.Value + " (" + u.Desc + ")"
}

// Placeholder synthesizes the entry returned for an unrecognized UID.
func Placeholder(value string) Entry {
	return Entry{Value: value, Desc: UnknownPrefix + value, placeholder: true}
}

// RawToString decodes a UID field read off the wire, dropping the single
// trailing NUL used to pad odd-length values and any surrounding spaces.
func RawToString(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	return strings.TrimSpace(string(raw))
}

// Sanitize strips NULs and whitespace, truncates to MaxLength and drops a
// trailing period.
func Sanitize(value string) string {
	value = strings.ReplaceAll(value, "\x00", "")
	value = strings.TrimSpace(value)
	if len(value) > MaxLength {
		value = value[:MaxLength]
	}
	return strings.TrimSuffix(value, ".")
}

// ToBytes returns the wire form of a UID: sanitized and NUL-padded to an even
// length.
func ToBytes(value string) []byte {
	value = Sanitize(value)
	b := make([]byte, len(value), len(value)+1)
	copy(b, value)
	if len(b)%2 == 1 {
		b = append(b, 0)
	}
	return b
}

// Valid reports whether value is a syntactically valid UID: 1..64 characters
// of digits and dots, no empty components, no leading zeros in a component.
func Valid(value string) bool {
	if value == "" || len(value) > MaxLength {
		return false
	}
	for _, part := range strings.Split(value, ".") {
		if part == "" {
			return false
		}
		if len(part) > 1 && part[0] == '0' {
			return false
		}
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return false
			}
		}
	}
	return true
}
