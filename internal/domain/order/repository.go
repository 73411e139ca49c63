package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/models"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrLocationNotFound      = errors.New("location not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrDuplicateOrderNumber  = errors.New("duplicate order number")
	ErrStatusChanged         = errors.New("order status changed concurrently")
)

type ListFilter struct {
	UserID *uuid.UUID
	// RestaurantIDs restricts results when non-nil; an empty slice matches nothing.
	RestaurantIDs []uuid.UUID
	Status        *Status
	Page          int
	Limit         int
}

type Repository interface {
	// Transaction runs fn against a repository bound to one database transaction.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Checkout --------

	// LockCart takes a row lock on the user's cart and loads it fully priced.
	// Returns nil, nil when the user has no cart.
	LockCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	FindLocation(ctx context.Context, userID, id uuid.UUID) (*models.Location, error)
	FindPaymentMethod(ctx context.Context, userID, id uuid.UUID) (*models.PaymentMethod, error)

	// CreateOrder stores the order with its items and add-ons.
	// Returns ErrDuplicateOrderNumber when the order number is taken.
	CreateOrder(ctx context.Context, o *models.Order) error
	CreateTransaction(ctx context.Context, t *models.PaymentTransaction) error
	ClearCart(ctx context.Context, cartID uuid.UUID) error

	// -------- Queries / status --------
	FindOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error)
	OwnedRestaurantIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	// UpdateStatus persists the status columns and payment status of o, but only
	// while the stored status is still from. Returns ErrStatusChanged otherwise.
	UpdateStatus(ctx context.Context, o *models.Order, from Status) error
}
