package brcode

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^55\d{10,11}$`)
)

// ValidatePixKey reports whether key has the syntactic shape of kind.
// It never checks that the key is registered with any institution.
func ValidatePixKey(key string, kind KeyType) bool {
	switch kind {
	case KeyCPF:
		return len(onlyDigits(key)) == 11
	case KeyCNPJ:
		return len(onlyDigits(key)) == 14
	case KeyEmail:
		return emailPattern.MatchString(key)
	case KeyPhone:
		return phonePattern.MatchString(onlyDigits(key))
	case KeyRandom:
		return isCanonicalUUID(key)
	default:
		return false
	}
}

// isCanonicalUUID accepts only the 36 character 8-4-4-4-12 form, in either
// case. uuid.Parse alone would also accept the braced, urn and bare forms.
func isCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// DetectKeyType guesses the kind of key from its text. Ambiguous digit
// strings resolve to phone only when written with a leading '+'.
func DetectKeyType(key string) (KeyType, bool) {
	key = strings.TrimSpace(key)
	switch {
	case key == "":
		return 0, false
	case ValidatePixKey(key, KeyRandom):
		return KeyRandom, true
	case strings.Contains(key, "@"):
		return KeyEmail, ValidatePixKey(key, KeyEmail)
	case strings.HasPrefix(key, "+"):
		return KeyPhone, ValidatePixKey(key, KeyPhone)
	case ValidatePixKey(key, KeyCPF):
		return KeyCPF, true
	case ValidatePixKey(key, KeyCNPJ):
		return KeyCNPJ, true
	default:
		return 0, false
	}
}

var (
	requestValidator     *validator.Validate
	requestValidatorOnce sync.Once
)

func getRequestValidator() *validator.Validate {
	requestValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		requestValidator = v
	})
	return requestValidator
}

// Validate checks the request against the limits of the PIX format. Merchant
// name and city may exceed their field width; they are truncated when
// building, so only their presence is checked here.
func (r Request) Validate() error {
	if err := getRequestValidator().Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ValidationError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: validationMessage(fe),
			}
		}
		return err
	}
	if r.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Rule: "gte", Message: "amount must not be negative"}
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "max":
		return "value longer than " + fe.Param() + " characters"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
