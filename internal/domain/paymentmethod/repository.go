package paymentmethod

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/models"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

type Repository interface {
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	Create(ctx context.Context, m *models.PaymentMethod) error

	// List returns the default method first, then newest first.
	List(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error)
	Find(ctx context.Context, userID, id uuid.UUID) (*models.PaymentMethod, error)

	// HasPendingTransactions reports whether a PENDING payment transaction
	// references the method.
	HasPendingTransactions(ctx context.Context, id uuid.UUID) (bool, error)

	// Delete removes the method. When it was the default, the newest
	// remaining method becomes the default.
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SetDefault(ctx context.Context, userID, id uuid.UUID) (*models.PaymentMethod, error)
}
