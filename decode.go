package brcode

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decoded is the content recovered from a PIX payload.
type Decoded struct {
	PixKey        string          `json:"pix_key"`
	Description   string          `json:"description,omitempty"`
	MerchantName  string          `json:"merchant_name"`
	MerchantCity  string          `json:"merchant_city"`
	Amount        decimal.Decimal `json:"amount"`
	HasAmount     bool            `json:"has_amount"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CRC           string          `json:"crc"`
	Fields        []Field         `json:"fields"`
}

// Decode parses payload, verifies its checksum and extracts the merchant
// account, amount, merchant name/city and reference label. Templates 26
// to 51 are scanned for the PIX GUI, compared case-insensitively.
func Decode(payload string) (*Decoded, error) {
	payload = strings.TrimSpace(payload)

	fields, err := ParseFields(payload)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidTLV)
	}

	last := fields[len(fields)-1]
	if last.Tag != TagCRC || last.Length() != crcHexLength {
		return nil, &FieldError{Tag: TagCRC, Err: ErrMissingField}
	}
	if !VerifyChecksum(payload) {
		body := payload[:len(payload)-crcHexLength]
		return nil, &FieldError{
			Tag: TagCRC,
			Err: fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, last.Value, CRC16(body)),
		}
	}

	if f, ok := FindField(fields, TagPayloadFormat); !ok || f.Value != PayloadFormatIndicator {
		return nil, &FieldError{Tag: TagPayloadFormat, Err: ErrMissingField}
	}

	out := &Decoded{CRC: strings.ToUpper(last.Value)}

	for i := range fields {
		f := &fields[i]
		switch {
		case isTemplateTag(f.Tag):
			children, err := ParseFields(f.Value)
			if err != nil {
				return nil, &FieldError{Tag: f.Tag, Err: err}
			}
			f.Children = children

			if out.PixKey != "" || f.Tag == TagAdditionalData {
				continue
			}
			if gui, ok := FindField(children, TagAccountGUI); !ok || !strings.EqualFold(gui.Value, PixGUI) {
				continue
			}
			if key, ok := FindField(children, TagAccountKey); ok {
				out.PixKey = key.Value
			}
			if desc, ok := FindField(children, TagAccountDescription); ok {
				out.Description = desc.Value
			}
		case f.Tag == TagAmount:
			amount, err := decimal.NewFromString(f.Value)
			if err != nil || amount.IsNegative() {
				return nil, &FieldError{Tag: TagAmount, Err: ErrInvalidAmount}
			}
			out.Amount = amount
			out.HasAmount = true
		case f.Tag == TagMerchantName:
			out.MerchantName = f.Value
		case f.Tag == TagMerchantCity:
			out.MerchantCity = f.Value
		}
	}

	if out.PixKey == "" {
		return nil, &FieldError{Tag: TagMerchantAccount, Err: ErrMissingField}
	}

	if add, ok := FindField(fields, TagAdditionalData); ok {
		if ref, ok := FindField(add.Children, TagReferenceLabel); ok {
			out.TransactionID = ref.Value
		}
	}

	out.Fields = fields
	return out, nil
}

// isTemplateTag reports whether tag holds nested fields: merchant account
// templates 26-51 and the additional data template 62.
func isTemplateTag(tag string) bool {
	if tag == TagAdditionalData {
		return true
	}
	n, err := strconv.Atoi(tag)
	return err == nil && n >= 26 && n <= 51
}

// Request converts the decoded content back into a Request.
func (d *Decoded) Request() Request {
	return Request{
		PixKey:        d.PixKey,
		MerchantName:  d.MerchantName,
		MerchantCity:  d.MerchantCity,
		Amount:        d.Amount,
		TransactionID: d.TransactionID,
		Description:   d.Description,
	}
}

// LogValue implements the slog.LogValuer interface for structured logging.
func (d *Decoded) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs,
		slog.String("merchant_name", d.MerchantName),
		slog.String("merchant_city", d.MerchantCity),
		slog.String("txid", d.TransactionID),
		slog.String("crc", d.CRC),
	)
	if d.HasAmount {
		attrs = append(attrs, slog.String("amount", d.Amount.StringFixed(2)))
	}

	fieldArgs := make([]any, 0, len(d.Fields))
	for _, f := range d.Fields {
		fieldArgs = append(fieldArgs, slog.String(f.Tag, f.Value))
	}
	attrs = append(attrs, slog.Group("fields", fieldArgs...))
	return slog.GroupValue(attrs...)
}
