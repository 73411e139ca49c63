package payment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaleed99/bite-back0/internal/models"
)

func TestDetectCardBrand(t *testing.T) {
	tests := map[string]string{
		"4111111111111111":    "Visa",
		"4111 1111 1111 1111": "Visa",
		"5500000000000004":    "Mastercard",
		"340000000000009":     "Amex",
		"6011000000000004":    "Discover",
		"6500000000000002":    "Discover",
		"9999999999999":       "Unknown",
	}

	for number, want := range tests {
		t.Run(number, func(t *testing.T) {
			assert.Equal(t, want, DetectCardBrand(number))
		})
	}
}

func TestMockGateway(t *testing.T) {
	g := NewMockGateway()

	res, err := g.Charge(context.Background(), ChargeRequest{
		Amount: decimal.NewFromInt(129),
		Method: &models.PaymentMethod{},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, res.Status)
	assert.Regexp(t, regexp.MustCompile(`^TXN-\d+$`), res.Reference)
}

func TestMockCardToken(t *testing.T) {
	tok, err := MockCardToken(time.UnixMilli(42))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^tok_42_[a-z0-9]{9}$`), tok)
}

func TestMercadoPagoMapping(t *testing.T) {
	assert.Equal(t, models.PaymentStatusPaid, mapMercadoPagoStatus("approved"))
	assert.Equal(t, models.PaymentStatusPending, mapMercadoPagoStatus("in_process"))
	assert.Equal(t, models.PaymentStatusFailed, mapMercadoPagoStatus("rejected"))
	assert.Equal(t, "master", mercadoPagoMethodID("Mastercard"))
	assert.Equal(t, "visa", mercadoPagoMethodID("Visa"))
}
