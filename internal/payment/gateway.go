package payment

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/security"
)

type ChargeRequest struct {
	OrderID     uuid.UUID
	OrderNumber string
	Amount      decimal.Decimal
	Method      *models.PaymentMethod
	PayerEmail  string
}

type ChargeResult struct {
	Reference string
	Status    models.PaymentStatus
	Gateway   string
}

// Gateway charges a stored payment method.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// MockGateway approves every charge.
type MockGateway struct {
	now func() time.Time
}

func NewMockGateway() *MockGateway {
	return &MockGateway{now: time.Now}
}

func (g *MockGateway) Charge(_ context.Context, _ ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{
		Reference: fmt.Sprintf("TXN-%d", g.now().UnixMilli()),
		Status:    models.PaymentStatusPaid,
		Gateway:   "mock",
	}, nil
}

// MockCardToken stands in for a gateway-issued card token.
func MockCardToken(now time.Time) (string, error) {
	suffix, err := security.RandomLowerAlnum(9)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("tok_%d_%s", now.UnixMilli(), suffix), nil
}

var (
	visaRe       = regexp.MustCompile(`^4`)
	mastercardRe = regexp.MustCompile(`^5[1-5]`)
	amexRe       = regexp.MustCompile(`^3[47]`)
	discoverRe   = regexp.MustCompile(`^6(?:011|5)`)
)

// DetectCardBrand infers the card network from the number prefix.
func DetectCardBrand(cardNumber string) string {
	n := strings.ReplaceAll(cardNumber, " ", "")
	switch {
	case visaRe.MatchString(n):
		return "Visa"
	case mastercardRe.MatchString(n):
		return "Mastercard"
	case amexRe.MatchString(n):
		return "Amex"
	case discoverRe.MatchString(n):
		return "Discover"
	}
	return "Unknown"
}
