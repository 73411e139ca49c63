package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/security"
)

var hundred = decimal.NewFromInt(100)

type Quote struct {
	Subtotal      decimal.Decimal
	DeliveryFee   decimal.Decimal
	VATPercentage decimal.Decimal
	VATAmount     decimal.Decimal
	Total         decimal.Decimal
}

// ComputeQuote prices an order. VAT is rounded to cents; the total is the
// exact sum of subtotal, delivery fee and VAT.
func ComputeQuote(subtotal, deliveryFee decimal.Decimal, vatPercentage int) Quote {
	pct := decimal.NewFromInt(int64(vatPercentage))
	vat := subtotal.Mul(pct).Div(hundred).Round(2)

	return Quote{
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		VATPercentage: pct,
		VATAmount:     vat,
		Total:         subtotal.Add(deliveryFee).Add(vat),
	}
}

// CheckMinimum rejects a subtotal below the restaurant minimum, reporting the shortfall.
func CheckMinimum(subtotal, minimum decimal.Decimal) error {
	if subtotal.GreaterThanOrEqual(minimum) {
		return nil
	}
	return httperr.ErrBadRequest(
		"below_minimum_order",
		fmt.Sprintf("Minimum order amount is %s. Current subtotal: %s", minimum.StringFixed(2), subtotal.StringFixed(2)),
	).WithDetails(map[string]string{
		"minimum":   minimum.StringFixed(2),
		"subtotal":  subtotal.StringFixed(2),
		"shortfall": minimum.Sub(subtotal).StringFixed(2),
	})
}

// NewOrderNumber returns ORD-<unix millis>-<6 random [A-Z0-9]>.
func NewOrderNumber(now time.Time) (string, error) {
	suffix, err := security.RandomUpperAlnum(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix), nil
}
