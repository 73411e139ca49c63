package cart

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/cart"
)

type ClearCart struct {
	repo domain.Repository
}

func NewClearCart(repo domain.Repository) *ClearCart {
	return &ClearCart{repo: repo}
}

func (uc *ClearCart) Execute(ctx context.Context, userID uuid.UUID) error {
	cart, err := uc.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}
	return uc.repo.Clear(ctx, cart.ID)
}
