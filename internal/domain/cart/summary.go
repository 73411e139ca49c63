package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awaleed99/bite-back0/internal/models"
)

type LineAddOn struct {
	ID            uuid.UUID          `json:"id"`
	AddOnOptionID uuid.UUID          `json:"addOnOptionId"`
	Name          string             `json:"name"`
	Price         decimal.Decimal    `json:"price"`
	Quantity      int                `json:"quantity"`
	AddOnOption   models.AddOnOption `json:"-"`
}

type Line struct {
	ID                  uuid.UUID       `json:"id"`
	MenuItem            models.MenuItem `json:"menuItem"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions *string         `json:"specialInstructions"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	AddOns              []LineAddOn     `json:"addOns"`
	LineTotal           decimal.Decimal `json:"lineTotal"`
}

type RestaurantSummary struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	LogoURL        *string         `json:"logoUrl"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	MinOrderAmount decimal.Decimal `json:"minOrderAmount"`
}

// Summary is the priced view of a cart.
type Summary struct {
	ID            uuid.UUID          `json:"id"`
	Restaurant    *RestaurantSummary `json:"restaurant"`
	Items         []Line             `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	ItemCount     int                `json:"itemCount"`
	TotalQuantity int                `json:"totalQuantity"`
}

// LineTotal prices one cart line: the effective unit price plus every add-on
// (price times its quantity), all multiplied by the line quantity.
func LineTotal(unit decimal.Decimal, addOns []LineAddOn, qty int) decimal.Decimal {
	perUnit := unit
	for _, a := range addOns {
		perUnit = perUnit.Add(a.Price.Mul(decimal.NewFromInt(int64(a.Quantity))))
	}
	return perUnit.Mul(decimal.NewFromInt(int64(qty)))
}

// Summarize expects items preloaded with MenuItem and AddOns.AddOnOption.
func Summarize(c *models.Cart) Summary {
	s := Summary{
		ID:       c.ID,
		Items:    make([]Line, 0, len(c.Items)),
		Subtotal: decimal.Zero,
	}

	if c.Restaurant != nil && len(c.Items) > 0 {
		s.Restaurant = &RestaurantSummary{
			ID:             c.Restaurant.ID,
			Name:           c.Restaurant.Name,
			LogoURL:        c.Restaurant.LogoURL,
			DeliveryFee:    c.Restaurant.DeliveryFee,
			MinOrderAmount: c.Restaurant.MinOrderAmount,
		}
	}

	for _, it := range c.Items {
		addOns := make([]LineAddOn, 0, len(it.AddOns))
		for _, a := range it.AddOns {
			addOns = append(addOns, LineAddOn{
				ID:            a.ID,
				AddOnOptionID: a.AddOnOptionID,
				Name:          a.AddOnOption.Name,
				Price:         a.AddOnOption.Price,
				Quantity:      a.Quantity,
				AddOnOption:   a.AddOnOption,
			})
		}

		unit := it.MenuItem.EffectivePrice()
		line := Line{
			ID:                  it.ID,
			MenuItem:            it.MenuItem,
			Quantity:            it.Quantity,
			SpecialInstructions: it.SpecialInstructions,
			UnitPrice:           unit,
			AddOns:              addOns,
			LineTotal:           LineTotal(unit, addOns, it.Quantity),
		}

		s.Items = append(s.Items, line)
		s.Subtotal = s.Subtotal.Add(line.LineTotal)
		s.TotalQuantity += it.Quantity
	}
	s.ItemCount = len(s.Items)

	return s
}
