package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awaleed99/bite-back0/internal/models"
)

// OrderListDTO is the compact order row returned by list endpoints.
type OrderListDTO struct {
	ID             uuid.UUID            `json:"id"`
	OrderNumber    string               `json:"orderNumber"`
	Status         string               `json:"status"`
	PaymentStatus  models.PaymentStatus `json:"paymentStatus"`
	Total          decimal.Decimal      `json:"total"`
	ItemCount      int                  `json:"itemCount"`
	RestaurantID   uuid.UUID            `json:"restaurantId"`
	RestaurantName string               `json:"restaurantName"`
	PlacedAt       *time.Time           `json:"placedAt"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func NewOrderList(orders []models.Order) []OrderListDTO {
	out := make([]OrderListDTO, 0, len(orders))
	for i := range orders {
		o := &orders[i]

		count := 0
		for _, it := range o.Items {
			count += it.Quantity
		}

		row := OrderListDTO{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			Status:        o.Status,
			PaymentStatus: o.PaymentStatus,
			Total:         o.Total,
			ItemCount:     count,
			RestaurantID:  o.RestaurantID,
			PlacedAt:      o.PlacedAt,
			CreatedAt:     o.CreatedAt,
		}
		if o.Restaurant != nil {
			row.RestaurantName = o.Restaurant.Name
		}
		out = append(out, row)
	}
	return out
}
