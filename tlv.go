package brcode

import (
	"fmt"
	"strconv"
)

const (
	tagWidth    = 2
	lengthWidth = 2
)

// ParseFields splits s into consecutive fixed-width ASCII TLV elements:
// a 2 character tag, a 2 digit decimal length and a value of that many
// bytes. Nested templates are not descended into; see Decode.
func ParseFields(s string) ([]Field, error) {
	fields := make([]Field, 0, 12)

	offset := 0
	for offset < len(s) {
		// Parse Tag
		if offset+tagWidth > len(s) {
			return nil, fmt.Errorf("%w: insufficient data for tag at offset %d: need %d, got %d",
				ErrInvalidTLV, offset, tagWidth, len(s)-offset)
		}
		tag := s[offset : offset+tagWidth]
		if !isDigit(tag[0]) || !isDigit(tag[1]) {
			return nil, fmt.Errorf("%w: non-numeric tag %q at offset %d", ErrInvalidTLV, tag, offset)
		}
		offset += tagWidth

		// Parse Length
		if offset+lengthWidth > len(s) {
			return nil, fmt.Errorf("%w: insufficient data for length at offset %d: need %d, got %d",
				ErrInvalidTLV, offset, lengthWidth, len(s)-offset)
		}
		lengthStr := s[offset : offset+lengthWidth]
		if !isDigit(lengthStr[0]) || !isDigit(lengthStr[1]) {
			return nil, fmt.Errorf("%w: invalid length %q for tag %s", ErrInvalidTLV, lengthStr, tag)
		}
		length, _ := strconv.Atoi(lengthStr)
		offset += lengthWidth

		// Parse Value
		if offset+length > len(s) {
			return nil, fmt.Errorf("%w: insufficient data for value of tag %s at offset %d: need %d, got %d",
				ErrInvalidTLV, tag, offset, length, len(s)-offset)
		}
		fields = append(fields, Field{Tag: tag, Value: s[offset : offset+length]})
		offset += length
	}

	return fields, nil
}

// FindField finds the first field matching the given tag.
func FindField(fields []Field, tag string) (*Field, bool) {
	for i := range fields {
		if fields[i].Tag == tag {
			return &fields[i], true
		}
	}
	return nil, false
}

// FieldsToMap converts fields to a map keyed by tag. Later duplicates win.
func FieldsToMap(fields []Field) map[string]string {
	result := make(map[string]string, len(fields))
	for _, f := range fields {
		result[f.Tag] = f.Value
	}
	return result
}
