package order

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/order"
	"github.com/awaleed99/bite-back0/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

type ListOrdersInput struct {
	Actor  domain.Actor
	Status *domain.Status
	Page   int
	Limit  int
}

type ListOrdersOutput struct {
	Orders []models.Order
	Total  int64
	Page   int
	Limit  int
}

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

// Execute lists the orders visible to the actor, newest first.
// Customers see their own orders, restaurant owners the orders of the
// restaurants they own, admins everything.
func (uc *ListOrders) Execute(ctx context.Context, in ListOrdersInput) (*ListOrdersOutput, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	filter := domain.ListFilter{
		Status: in.Status,
		Page:   page,
		Limit:  limit,
	}

	switch in.Actor.Role {
	case models.RoleAdmin:
	case models.RoleRestaurantOwner:
		ids, err := uc.repo.OwnedRestaurantIDs(ctx, in.Actor.ID)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []uuid.UUID{}
		}
		filter.RestaurantIDs = ids
	default:
		userID := in.Actor.ID
		filter.UserID = &userID
	}

	orders, total, err := uc.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListOrdersOutput{
		Orders: orders,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
