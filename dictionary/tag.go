package dictionary

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag is a DICOM attribute tag: group in the high 16 bits, element in the low.
type Tag uint32

// NewTag combines a group and element number.
func NewTag(group, element uint16) Tag {
	return Tag(uint32(group)<<16 | uint32(element))
}

// Group returns the group number.
func (t Tag) Group() uint16 { return uint16(t >> 16) }

// Element returns the element number.
func (t Tag) Element() uint16 { return uint16(t) }

// String returns the tag as a string in (GGGG,EEEE) format
func (t Tag) String() string {
	return fmt.Sprintf("(%04x,%04x)", t.Group(), t.Element())
}

// ParseTag accepts "(gggg,eeee)", "gggg,eeee" or "ggggeeee" in hex.
func ParseTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.ReplaceAll(s, ",", "")
	if len(s) != 8 {
		return 0, fmt.Errorf("tag %q: want 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("tag %q: %w", s, err)
	}
	return Tag(v), nil
}
