package brcode

import "fmt"

// EncodeField returns tag, the two digit byte length of value and value,
// concatenated with no escaping.
func EncodeField(tag, value string) (string, error) {
	buf, err := appendField(getBuffer(), tag, value)
	if err != nil {
		putBuffer(buf)
		return "", err
	}
	s := string(buf)
	putBuffer(buf)
	return s, nil
}

// EncodeGroup encodes fields in the given order. It is used both for the
// top level of a payload and for the value of a template such as 26 or 62.
func EncodeGroup(fields ...Field) (string, error) {
	buf := getBuffer()
	defer func() { putBuffer(buf) }()

	var err error
	for _, f := range fields {
		value := f.Value
		if len(f.Children) > 0 {
			if value, err = EncodeGroup(f.Children...); err != nil {
				return "", &FieldError{Tag: f.Tag, Err: err}
			}
		}
		if buf, err = appendField(buf, f.Tag, value); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}

// appendField is the single place where the TLV layout is written.
func appendField(dst []byte, tag, value string) ([]byte, error) {
	if len(tag) != 2 || !isDigit(tag[0]) || !isDigit(tag[1]) {
		return dst, &FieldError{Tag: tag, Err: ErrInvalidTag}
	}
	if len(value) > MaxValueLength {
		return dst, &FieldError{
			Tag: tag,
			Err: fmt.Errorf("%w: %d bytes, maximum %d", ErrValueTooLong, len(value), MaxValueLength),
		}
	}
	dst = append(dst, tag...)
	dst = appendLength(dst, len(value))
	dst = append(dst, value...)
	return dst, nil
}

func (f Field) String() string {
	return fmt.Sprintf("%s%02d%s", f.Tag, len(f.Value), f.Value)
}
