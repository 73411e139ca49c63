package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/cart"
)

type UpdateItemInput struct {
	UserID              uuid.UUID
	ItemID              uuid.UUID
	Quantity            *int
	SpecialInstructions *string
}

type UpdateItem struct {
	repo domain.Repository
}

func NewUpdateItem(repo domain.Repository) *UpdateItem {
	return &UpdateItem{repo: repo}
}

func (uc *UpdateItem) Execute(ctx context.Context, in UpdateItemInput) (*domain.Summary, error) {
	if in.Quantity != nil && *in.Quantity < 1 {
		return nil, errInvalidQuantity
	}

	cart, err := uc.repo.GetOrCreateCart(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	item, err := uc.repo.FindCartItem(ctx, cart.ID, in.ItemID)
	if errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, errCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.SpecialInstructions != nil {
		item.SpecialInstructions = in.SpecialInstructions
	}

	if err := uc.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return summarize(ctx, uc.repo, in.UserID)
}
