package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/cart"
)

type RemoveItem struct {
	repo domain.Repository
}

func NewRemoveItem(repo domain.Repository) *RemoveItem {
	return &RemoveItem{repo: repo}
}

func (uc *RemoveItem) Execute(ctx context.Context, userID, itemID uuid.UUID) (*domain.Summary, error) {
	cart, err := uc.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = uc.repo.RemoveItem(ctx, cart.ID, itemID)
	if errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, errCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return summarize(ctx, uc.repo, userID)
}
