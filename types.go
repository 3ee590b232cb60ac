// Package brcode builds, validates and decodes PIX "BR Code" payloads, the
// EMV merchant-presented QR code format used by Brazilian instant payments.
package brcode

import (
	"strings"

	"github.com/shopspring/decimal"
)

// KeyType identifies the kind of PIX key registered by the merchant.
type KeyType int

const (
	KeyCPF KeyType = iota
	KeyCNPJ
	KeyEmail
	KeyPhone
	KeyRandom
)

func (k KeyType) String() string {
	switch k {
	case KeyCPF:
		return "cpf"
	case KeyCNPJ:
		return "cnpj"
	case KeyEmail:
		return "email"
	case KeyPhone:
		return "phone"
	case KeyRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseKeyType maps a key kind name ("cpf", "cnpj", "email", "phone",
// "random") to its KeyType. "evp" is accepted as an alias for random keys.
func ParseKeyType(s string) (KeyType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpf":
		return KeyCPF, true
	case "cnpj":
		return KeyCNPJ, true
	case "email", "e-mail":
		return KeyEmail, true
	case "phone", "telefone":
		return KeyPhone, true
	case "random", "evp":
		return KeyRandom, true
	default:
		return 0, false
	}
}

// Request carries the merchant and payment data for a single static
// PIX payload. It is a plain value; nothing in this package retains it.
type Request struct {
	PixKey        string          `json:"pix_key" validate:"required,max=77"`
	MerchantName  string          `json:"merchant_name" validate:"required"`
	MerchantCity  string          `json:"merchant_city" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id,omitempty" validate:"omitempty,max=25"`
	Description   string          `json:"description,omitempty" validate:"omitempty,max=72"`
}

// Field is a single EMV tag-length-value element. The length is never
// stored: it is derived from Value when encoding and checked when decoding.
type Field struct {
	Tag      string  `json:"tag"`
	Value    string  `json:"value"`
	Children []Field `json:"children,omitempty"` // populated by the decoder for templates 26 and 62
}

// Length returns the number of bytes carried by the field value.
func (f Field) Length() int {
	return len(f.Value)
}

const (
	TagPayloadFormat      = "00"
	TagMerchantAccount    = "26"
	TagMerchantCategory   = "52"
	TagCurrency           = "53"
	TagAmount             = "54"
	TagCountry            = "58"
	TagMerchantName       = "59"
	TagMerchantCity       = "60"
	TagAdditionalData     = "62"
	TagCRC                = "63"
	TagAccountGUI         = "00" // inside 26
	TagAccountKey         = "01" // inside 26
	TagAccountDescription = "02" // inside 26
	TagReferenceLabel     = "05" // inside 62
)

const (
	PayloadFormatIndicator = "01"
	PixGUI                 = "BR.GOV.BCB.PIX"
	MerchantCategoryCode   = "0000"
	CurrencyBRL            = "986"
	CountryCode            = "BR"

	MaxMerchantNameLength  = 25
	MaxMerchantCityLength  = 15
	MaxValueLength         = 99
	TransactionIDLength    = 25
	MaxTransactionIDLength = 25
	MaxPixKeyLength        = 77

	// crcMarker is the tag and fixed length of the CRC field, written
	// before the checksum because the checksum covers it.
	crcMarker    = TagCRC + "04"
	crcHexLength = 4
)
