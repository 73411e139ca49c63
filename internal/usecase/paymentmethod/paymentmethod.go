package paymentmethod

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/paymentmethod"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/payment"
)

var (
	errNotFound       = httperr.ErrNotFound("payment_method_not_found", "Payment method not found")
	errPendingPayment = httperr.ErrBadRequest("payment_method_in_use", "Cannot delete payment method with pending transactions")
)

func notFound(err error) error {
	if errors.Is(err, domain.ErrPaymentMethodNotFound) {
		return errNotFound
	}
	return err
}

// ======================================================
// ADD
// ======================================================

type AddInput struct {
	UserID      uuid.UUID
	Type        models.PaymentMethodType
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	// CardToken is a gateway token produced on the client. When empty a mock
	// token is generated.
	CardToken string
}

type Add struct {
	repo domain.Repository
	now  func() time.Time
}

func NewAdd(repo domain.Repository) *Add {
	return &Add{repo: repo, now: time.Now}
}

// Execute stores a tokenized card. Only the token, the last four digits and
// the brand are kept. The user's first method becomes the default.
func (uc *Add) Execute(ctx context.Context, in AddInput) (*models.PaymentMethod, error) {
	lastFour, err := domain.LastFour(in.CardNumber)
	if err != nil {
		return nil, err
	}

	token := in.CardToken
	if token == "" {
		if token, err = payment.MockCardToken(uc.now()); err != nil {
			return nil, err
		}
	}

	existing, err := uc.repo.Count(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	m := &models.PaymentMethod{
		UserID:         in.UserID,
		Type:           in.Type,
		CardToken:      token,
		LastFourDigits: lastFour,
		CardBrand:      payment.DetectCardBrand(in.CardNumber),
		ExpiryMonth:    in.ExpiryMonth,
		ExpiryYear:     in.ExpiryYear,
		IsDefault:      existing == 0,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ======================================================
// LIST / REMOVE / DEFAULT
// ======================================================

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error) {
	return uc.repo.List(ctx, userID)
}

type Remove struct {
	repo domain.Repository
}

func NewRemove(repo domain.Repository) *Remove {
	return &Remove{repo: repo}
}

func (uc *Remove) Execute(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := uc.repo.Find(ctx, userID, id); err != nil {
		return notFound(err)
	}

	pending, err := uc.repo.HasPendingTransactions(ctx, id)
	if err != nil {
		return err
	}
	if pending {
		return errPendingPayment
	}

	return notFound(uc.repo.Delete(ctx, userID, id))
}

type SetDefault struct {
	repo domain.Repository
}

func NewSetDefault(repo domain.Repository) *SetDefault {
	return &SetDefault{repo: repo}
}

func (uc *SetDefault) Execute(ctx context.Context, userID, id uuid.UUID) (*models.PaymentMethod, error) {
	m, err := uc.repo.SetDefault(ctx, userID, id)
	return m, notFound(err)
}
