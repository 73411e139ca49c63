package cart

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/cart"
)

type GetCart struct {
	repo domain.Repository
}

func NewGetCart(repo domain.Repository) *GetCart {
	return &GetCart{repo: repo}
}

// Execute returns the priced cart, creating an empty one on first access.
func (uc *GetCart) Execute(ctx context.Context, userID uuid.UUID) (*domain.Summary, error) {
	return summarize(ctx, uc.repo, userID)
}

func summarize(ctx context.Context, repo domain.Repository, userID uuid.UUID) (*domain.Summary, error) {
	cart, err := repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := domain.Summarize(cart)
	return &s, nil
}
