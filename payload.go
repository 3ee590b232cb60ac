package brcode

import (
	"fmt"
	"log/slog"
	"strings"
)

// Payload is a complete PIX "copia e cola" string, terminated by the CRC
// field. Use String to obtain the text handed to a QR renderer.
type Payload struct {
	text          string
	transactionID string
}

// BuildPayload assembles the static PIX payload for req.
//
// Merchant name, city and description are transliterated to ASCII and the
// name and city are silently truncated to 25 and 15 characters. A blank
// transaction id is replaced by a generated one. Field 54 is omitted when
// the amount, rounded to cents, is zero.
func BuildPayload(req Request, opts ...Option) (Payload, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.validate {
		if err := req.Validate(); err != nil {
			return Payload{}, err
		}
	}
	if req.Amount.IsNegative() {
		return Payload{}, &FieldError{Tag: TagAmount, Err: ErrNegativeAmount}
	}

	txid := strings.TrimSpace(req.TransactionID)
	if txid == "" {
		txid = cfg.txidGenerator()
	}

	account := []Field{
		{Tag: TagAccountGUI, Value: PixGUI},
		{Tag: TagAccountKey, Value: req.PixKey},
	}
	if desc := NormalizeASCII(strings.TrimSpace(req.Description)); desc != "" {
		account = append(account, Field{Tag: TagAccountDescription, Value: desc})
	}

	fields := make([]Field, 0, 9)
	fields = append(fields,
		Field{Tag: TagPayloadFormat, Value: PayloadFormatIndicator},
		Field{Tag: TagMerchantAccount, Children: account},
		Field{Tag: TagMerchantCategory, Value: MerchantCategoryCode},
		Field{Tag: TagCurrency, Value: CurrencyBRL},
	)
	if amount := req.Amount.Round(2); amount.IsPositive() {
		fields = append(fields, Field{Tag: TagAmount, Value: amount.StringFixed(2)})
	}
	fields = append(fields,
		Field{Tag: TagCountry, Value: CountryCode},
		Field{Tag: TagMerchantName, Value: truncate(NormalizeASCII(req.MerchantName), MaxMerchantNameLength)},
		Field{Tag: TagMerchantCity, Value: truncate(NormalizeASCII(req.MerchantCity), MaxMerchantCityLength)},
		Field{Tag: TagAdditionalData, Children: []Field{{Tag: TagReferenceLabel, Value: txid}}},
	)

	body, err := EncodeGroup(fields...)
	if err != nil {
		return Payload{}, fmt.Errorf("encode payload: %w", err)
	}
	body += crcMarker

	return Payload{text: body + CRC16(body), transactionID: txid}, nil
}

// String returns the payload text.
func (p Payload) String() string {
	return p.text
}

// TransactionID returns the reference label carried in field 62, which is
// the generated one when the request had none.
func (p Payload) TransactionID() string {
	return p.transactionID
}

// CRC returns the four hex digit checksum that terminates the payload.
func (p Payload) CRC() string {
	if len(p.text) < crcHexLength {
		return ""
	}
	return p.text[len(p.text)-crcHexLength:]
}

// LogValue implements the slog.LogValuer interface for structured logging.
func (p Payload) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("txid", p.transactionID),
		slog.String("crc", p.CRC()),
		slog.Int("length", len(p.text)),
	)
}
