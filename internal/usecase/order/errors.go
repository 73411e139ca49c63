package order

import "github.com/awaleed99/bite-back0/internal/httperr"

var (
	errCartEmpty             = httperr.ErrBadRequest("cart_empty", "Cart is empty")
	errCartWithoutRestaurant = httperr.ErrBadRequest("cart_without_restaurant", "Restaurant not found in cart")
	errLocationNotFound      = httperr.ErrNotFound("location_not_found", "Delivery location not found")
	errPaymentMethodNotFound = httperr.ErrNotFound("payment_method_not_found", "Payment method not found")
	errPaymentDeclined       = httperr.ErrBadRequest("payment_declined", "Payment was not approved")

	errOrderNotFound = httperr.ErrNotFound("order_not_found", "Order not found")
	errInvalidStatus = httperr.ErrValidation("invalid_status", "Invalid order status")
	errStatusChanged = httperr.ErrBadRequest("order_status_changed", "Order status was changed by someone else. Reload and try again.")
)
