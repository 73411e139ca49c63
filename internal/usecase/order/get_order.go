package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/order"
	"github.com/awaleed99/bite-back0/internal/models"
)

type GetOrder struct {
	repo domain.Repository
}

func NewGetOrder(repo domain.Repository) *GetOrder {
	return &GetOrder{repo: repo}
}

func (uc *GetOrder) Execute(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*models.Order, error) {
	order, err := findOrder(ctx, uc.repo, orderID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanView(actor, order, restaurantOwner(order)); err != nil {
		return nil, err
	}

	return order, nil
}

func findOrder(ctx context.Context, repo domain.Repository, id uuid.UUID) (*models.Order, error) {
	order, err := repo.FindOrder(ctx, id)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return nil, errOrderNotFound
	}
	return order, err
}

func restaurantOwner(o *models.Order) *uuid.UUID {
	if o.Restaurant == nil {
		return nil
	}
	return o.Restaurant.OwnerID
}
