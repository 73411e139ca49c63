package order

import (
	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/models"
)

// Actor is the caller an order operation is evaluated for.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  models.Role
}

var (
	errAccessDenied = httperr.ErrForbidden("access_denied", "Access denied")
	errOrderClosed  = httperr.ErrBadRequest("order_closed", "Order is already delivered or cancelled")
)

// CanView decides whether actor may read o. restaurantOwner is the owner of
// the order's restaurant, if any.
func CanView(actor Actor, o *models.Order, restaurantOwner *uuid.UUID) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleRestaurantOwner:
		if restaurantOwner != nil && *restaurantOwner == actor.ID {
			return nil
		}
		return errAccessDenied
	default:
		if o.UserID == actor.ID {
			return nil
		}
		return errAccessDenied
	}
}

// CanTransition decides whether actor may move o to target.
// Customers may only cancel their own order while it is PLACED. Staff roles
// (owner of the restaurant, admin) may set any status until the order is
// delivered or cancelled.
func CanTransition(actor Actor, o *models.Order, restaurantOwner *uuid.UUID, target Status) error {
	if err := CanView(actor, o, restaurantOwner); err != nil {
		return err
	}

	if actor.Role != models.RoleUser {
		if Status(o.Status).Terminal() {
			return errOrderClosed
		}
		return nil
	}

	if target != StatusCancelled {
		return httperr.ErrForbidden("users_can_only_cancel", "Users can only cancel orders")
	}
	if Status(o.Status) != StatusPlaced {
		return httperr.ErrBadRequest("cannot_cancel", "Order cannot be cancelled at this stage")
	}
	return nil
}
