package cart

import (
	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/models"
)

// CanAdd checks that item may go into a cart currently bound to restaurantID
// (nil when the cart is empty).
func CanAdd(restaurantID *uuid.UUID, hasItems bool, item *models.MenuItem) error {
	if !item.IsAvailable {
		return httperr.ErrNotFound("menu_item_unavailable", "Menu item not found or unavailable")
	}
	if hasItems && restaurantID != nil && *restaurantID != item.RestaurantID {
		return httperr.ErrBadRequest(
			"different_restaurant",
			"Cart contains items from a different restaurant. Clear the cart first.",
		)
	}
	return nil
}

// ValidateAddOn checks that option is sellable and belongs to item.
func ValidateAddOn(item *models.MenuItem, option *models.AddOnOption) error {
	if option.Group.MenuItemID != item.ID {
		return httperr.ErrBadRequest("invalid_add_on", "Add-on does not belong to this menu item")
	}
	if !option.IsAvailable {
		return httperr.ErrBadRequest("add_on_unavailable", "Add-on is not available")
	}
	return nil
}

// CheckLine re-validates a line already in the cart against the current menu.
func CheckLine(restaurantID *uuid.UUID, line *models.CartItem) error {
	if err := CanAdd(restaurantID, true, &line.MenuItem); err != nil {
		return err
	}
	for _, a := range line.AddOns {
		if !a.AddOnOption.IsAvailable {
			return httperr.ErrBadRequest("add_on_unavailable", "Add-on is not available").
				WithDetails(map[string]string{"addOn": a.AddOnOption.Name})
		}
	}
	return nil
}
