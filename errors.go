package brcode

import "fmt"

var (
	ErrInvalidTag       = fmt.Errorf("invalid tag")
	ErrValueTooLong     = fmt.Errorf("value too long")
	ErrNegativeAmount   = fmt.Errorf("negative amount")
	ErrInvalidTLV       = fmt.Errorf("invalid TLV data")
	ErrChecksumMismatch = fmt.Errorf("checksum mismatch")
	ErrMissingField     = fmt.Errorf("missing field")
	ErrValidationFailed = fmt.Errorf("validation failed")
	ErrInvalidAmount    = fmt.Errorf("invalid amount")
)

// FieldError reports a failure tied to a specific EMV tag.
type FieldError struct {
	Tag string
	Err error
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", fe.Tag, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}

// ValidationError reports a request rejected by Request.Validate.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s (%s): %s", ve.Field, ve.Rule, ve.Message)
}

func (ve *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
