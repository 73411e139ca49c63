package order

import (
	"time"

	"github.com/awaleed99/bite-back0/internal/models"
)

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusPlaced         Status = "PLACED"
	StatusConfirmed      Status = "CONFIRMED"
	StatusPreparing      Status = "PREPARING"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
	StatusCancelled      Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendingPayment, StatusPlaced, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status change is allowed.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func InitialStatus() Status {
	return StatusPendingPayment
}

// ===============================
// Transitions
// ===============================

// Apply moves o to status to and stamps the matching timestamp.
func Apply(o *models.Order, to Status, reason *string, now time.Time) {
	o.Status = string(to)

	switch to {
	case StatusPlaced:
		o.PlacedAt = &now
	case StatusConfirmed:
		o.ConfirmedAt = &now
	case StatusPreparing:
		o.PreparingAt = &now
	case StatusOutForDelivery:
		o.OutForDeliveryAt = &now
	case StatusDelivered:
		o.DeliveredAt = &now
		o.ActualDeliveryTime = &now
	case StatusCancelled:
		o.CancelledAt = &now
		o.CancellationReason = reason
	}
}

// StatusColumns lists the columns Apply may touch.
var StatusColumns = []string{
	"status", "placed_at", "confirmed_at", "preparing_at", "out_for_delivery_at",
	"delivered_at", "actual_delivery_time", "cancelled_at", "cancellation_reason",
}
