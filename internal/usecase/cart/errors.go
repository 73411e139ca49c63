package cart

import "github.com/awaleed99/bite-back0/internal/httperr"

var (
	errMenuItemNotFound = httperr.ErrNotFound("menu_item_not_found", "Menu item not found or unavailable")
	errAddOnNotFound    = httperr.ErrBadRequest("add_on_not_found", "Add-on option not found or unavailable")
	errCartItemNotFound = httperr.ErrNotFound("cart_item_not_found", "Cart item not found")
	errInvalidQuantity  = httperr.ErrValidation("invalid_quantity", "Quantity must be at least 1")
)
