package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/models"
)

var (
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrAddOnOptionNotFound = errors.New("add-on option not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
)

type Repository interface {
	// GetOrCreateCart returns the user's cart with items, menu items, add-ons and
	// restaurant preloaded, creating an empty cart on first access.
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)

	FindMenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	FindAddOnOption(ctx context.Context, id uuid.UUID) (*models.AddOnOption, error)

	// AddItem stores item (with its add-ons) and binds the cart to restaurantID.
	AddItem(ctx context.Context, cart *models.Cart, restaurantID uuid.UUID, item *models.CartItem) error
	FindCartItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error)
	UpdateItem(ctx context.Context, item *models.CartItem) error

	// RemoveItem deletes the item; an emptied cart is unbound from its restaurant.
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error
	Clear(ctx context.Context, cartID uuid.UUID) error
}
