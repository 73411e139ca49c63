package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/cart"
	"github.com/awaleed99/bite-back0/internal/models"
)

type AddOnInput struct {
	AddOnOptionID uuid.UUID
	Quantity      int
}

type AddItemInput struct {
	UserID              uuid.UUID
	MenuItemID          uuid.UUID
	Quantity            int
	SpecialInstructions *string
	AddOns              []AddOnInput
}

type AddItem struct {
	repo domain.Repository
}

func NewAddItem(repo domain.Repository) *AddItem {
	return &AddItem{repo: repo}
}

func (uc *AddItem) Execute(ctx context.Context, in AddItemInput) (*domain.Summary, error) {
	if in.Quantity < 1 {
		return nil, errInvalidQuantity
	}

	// ----------------------------------------
	// 1. Menu item
	// ----------------------------------------
	item, err := uc.repo.FindMenuItem(ctx, in.MenuItemID)
	if errors.Is(err, domain.ErrMenuItemNotFound) {
		return nil, errMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}

	// ----------------------------------------
	// 2. Single restaurant per cart
	// ----------------------------------------
	cart, err := uc.repo.GetOrCreateCart(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanAdd(cart.RestaurantID, len(cart.Items) > 0, item); err != nil {
		return nil, err
	}

	// ----------------------------------------
	// 3. Add-ons
	// ----------------------------------------
	addOns := make([]models.CartItemAddOn, 0, len(in.AddOns))
	for _, a := range in.AddOns {
		if a.Quantity < 1 {
			return nil, errInvalidQuantity
		}
		opt, err := uc.repo.FindAddOnOption(ctx, a.AddOnOptionID)
		if errors.Is(err, domain.ErrAddOnOptionNotFound) {
			return nil, errAddOnNotFound.WithDetails(map[string]string{"addOnOptionId": a.AddOnOptionID.String()})
		}
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateAddOn(item, opt); err != nil {
			return nil, err
		}
		addOns = append(addOns, models.CartItemAddOn{AddOnOptionID: opt.ID, Quantity: a.Quantity})
	}

	// ----------------------------------------
	// 4. Persist
	// ----------------------------------------
	line := &models.CartItem{
		MenuItemID:          item.ID,
		Quantity:            in.Quantity,
		SpecialInstructions: in.SpecialInstructions,
		AddOns:              addOns,
	}
	if err := uc.repo.AddItem(ctx, cart, item.RestaurantID, line); err != nil {
		return nil, err
	}

	return summarize(ctx, uc.repo, in.UserID)
}
