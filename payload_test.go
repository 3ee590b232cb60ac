package brcode

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() Request {
	return Request{
		PixKey:        "teste@example.com",
		MerchantName:  "PAULO CELL",
		MerchantCity:  "VITORIA",
		Amount:        decimal.RequireFromString("10.50"),
		TransactionID: "ABC123",
	}
}

func TestBuildPayloadScenario(t *testing.T) {
	p, err := BuildPayload(sampleRequest())
	require.NoError(t, err)

	s := p.String()
	assert.Equal(t,
		"00020126390014BR.GOV.BCB.PIX0117teste@example.com520400005303986540510.505802BR5910PAULO CELL6007VITORIA62100506ABC123630434E4",
		s)
	assert.True(t, strings.HasPrefix(s, "000201"))
	assert.Contains(t, s, "26390014BR.GOV.BCB.PIX0117teste@example.com")
	assert.Contains(t, s, "5303986")
	assert.Contains(t, s, "540510.50")
	assert.Contains(t, s, "5802BR")
	assert.Contains(t, s, "5910PAULO CELL")
	assert.Contains(t, s, "6007VITORIA")
	assert.Regexp(t, `6304[0-9A-F]{4}$`, s)
	assert.Equal(t, "34E4", p.CRC())
	assert.Equal(t, "ABC123", p.TransactionID())
}

func TestBuildPayloadZeroAmountOmitsField54(t *testing.T) {
	for _, amount := range []string{"0", "0.00", "0.001"} {
		req := sampleRequest()
		req.Amount = decimal.RequireFromString(amount)

		p, err := BuildPayload(req)
		require.NoError(t, err)
		assert.Equal(t,
			"00020126390014BR.GOV.BCB.PIX0117teste@example.com5204000053039865802BR5910PAULO CELL6007VITORIA62100506ABC1236304AFC7",
			p.String())

		fields, err := ParseFields(p.String())
		require.NoError(t, err)
		_, found := FindField(fields, TagAmount)
		assert.False(t, found, "amount %s", amount)
	}
}

func TestBuildPayloadAmountFormatting(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "1", want: "54041.00"},
		{amount: "10.5", want: "540510.50"},
		{amount: "1234567.891", want: "54101234567.89"},
		{amount: "0.005", want: "54040.01"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			req := sampleRequest()
			req.Amount = decimal.RequireFromString(tt.amount)
			p, err := BuildPayload(req)
			require.NoError(t, err)
			assert.Contains(t, p.String(), "5303986"+tt.want+"5802BR")
		})
	}
}

func TestBuildPayloadNegativeAmount(t *testing.T) {
	req := sampleRequest()
	req.Amount = decimal.NewFromInt(-1)

	_, err := BuildPayload(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeAmount))
}

func TestBuildPayloadTruncation(t *testing.T) {
	name25 := "ABCDEFGHIJKLMNOPQRSTUVWXY"
	city15 := "ABCDEFGHIJKLMNO"

	tests := []struct {
		name     string
		merchant string
		city     string
		wantName string
		wantCity string
	}{
		{name: "exact limits", merchant: name25, city: city15, wantName: name25, wantCity: city15},
		{name: "one over", merchant: name25 + "Z", city: city15 + "P", wantName: name25, wantCity: city15},
		{name: "far over", merchant: strings.Repeat("N", 80), city: strings.Repeat("C", 40), wantName: strings.Repeat("N", 25), wantCity: strings.Repeat("C", 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			req.MerchantName = tt.merchant
			req.MerchantCity = tt.city

			p, err := BuildPayload(req)
			require.NoError(t, err)

			fields, err := ParseFields(p.String())
			require.NoError(t, err)

			name, ok := FindField(fields, TagMerchantName)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, name.Value)
			assert.Contains(t, p.String(), TagMerchantName+"25"+tt.wantName)

			city, ok := FindField(fields, TagMerchantCity)
			require.True(t, ok)
			assert.Equal(t, tt.wantCity, city.Value)
		})
	}
}

func TestBuildPayloadNormalizesBeforeTruncating(t *testing.T) {
	req := sampleRequest()
	req.MerchantName = "Ótica São João Conserto Ltda"
	req.MerchantCity = "São José dos Campos"

	p, err := BuildPayload(req)
	require.NoError(t, err)

	s := p.String()
	assert.Contains(t, s, "5925Otica Sao Joao Conserto L")
	assert.Contains(t, s, "6015Sao Jose dos Ca")
	for i := 0; i < len(s); i++ {
		assert.Less(t, s[i], byte(0x80))
	}
}

func TestBuildPayloadDescription(t *testing.T) {
	req := sampleRequest()
	req.Description = "Conserto de tela"

	p, err := BuildPayload(req)
	require.NoError(t, err)
	assert.Contains(t, p.String(), "26590014BR.GOV.BCB.PIX0117teste@example.com0216Conserto de tela5204")
	assert.True(t, VerifyChecksum(p.String()))
}

func TestBuildPayloadGeneratesTransactionID(t *testing.T) {
	for _, txid := range []string{"", "   "} {
		req := sampleRequest()
		req.TransactionID = txid

		p, err := BuildPayload(req)
		require.NoError(t, err)
		assert.Len(t, p.TransactionID(), TransactionIDLength)
		assert.Regexp(t, `^[A-Za-z0-9]{25}$`, p.TransactionID())
		assert.Contains(t, p.String(), "62290525"+p.TransactionID()+"6304")
	}
}

func TestBuildPayloadCustomTransactionIDGenerator(t *testing.T) {
	req := sampleRequest()
	req.TransactionID = ""

	p, err := BuildPayload(req, WithTransactionIDGenerator(func() string { return "***" }))
	require.NoError(t, err)
	assert.Equal(t, "***", p.TransactionID())
	assert.Contains(t, p.String(), "62070503***6304")
}

func TestBuildPayloadMatchesManualExample(t *testing.T) {
	p, err := BuildPayload(Request{
		PixKey:        "123e4567-e12b-12d1-a456-426655440000",
		MerchantName:  "Fulano de Tal",
		MerchantCity:  "BRASILIA",
		TransactionID: "***",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"00020126580014BR.GOV.BCB.PIX0136123e4567-e12b-12d1-a456-4266554400005204000053039865802BR5913Fulano de Tal6008BRASILIA62070503***6304F01B",
		p.String())
}

func TestBuildPayloadChecksumSelfConsistent(t *testing.T) {
	req := sampleRequest()
	for i := 0; i < 50; i++ {
		req.TransactionID = ""
		req.Amount = decimal.New(int64(i*137), -2)

		p, err := BuildPayload(req)
		require.NoError(t, err)

		s := p.String()
		body := s[:len(s)-4]
		assert.True(t, strings.HasSuffix(body, "6304"))
		assert.Equal(t, s[len(s)-4:], CRC16(body))
	}
}

func TestBuildPayloadWithValidation(t *testing.T) {
	req := sampleRequest()
	req.PixKey = ""

	_, err := BuildPayload(req, WithValidation())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = BuildPayload(sampleRequest(), WithValidation())
	assert.NoError(t, err)
}

func TestPayloadLogValue(t *testing.T) {
	p, err := BuildPayload(sampleRequest())
	require.NoError(t, err)

	v := p.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	attrs := map[string]string{}
	for _, a := range v.Group() {
		attrs[a.Key] = a.Value.String()
	}
	assert.Equal(t, "ABC123", attrs["txid"])
	assert.Equal(t, "34E4", attrs["crc"])
}
