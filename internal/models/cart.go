package models

import "github.com/google/uuid"

// Cart is one per user. After checkout its items are removed but the cart row stays.
type Cart struct {
	BaseModel

	UserID       uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	RestaurantID *uuid.UUID  `gorm:"type:uuid" json:"restaurantId"`
	Restaurant   *Restaurant `gorm:"constraint:OnDelete:SET NULL;" json:"restaurant,omitempty"`

	Items []CartItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`
}

type CartItem struct {
	BaseModel

	CartID     uuid.UUID `gorm:"type:uuid;not null;index" json:"cartId"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null" json:"menuItemId"`
	MenuItem   MenuItem  `gorm:"constraint:OnDelete:CASCADE;" json:"menuItem"`

	Quantity            int     `gorm:"not null" json:"quantity"`
	SpecialInstructions *string `gorm:"type:text" json:"specialInstructions"`

	AddOns []CartItemAddOn `gorm:"constraint:OnDelete:CASCADE;" json:"addOns"`
}

type CartItemAddOn struct {
	BaseModel

	CartItemID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"cartItemId"`
	AddOnOptionID uuid.UUID   `gorm:"type:uuid;not null" json:"addOnOptionId"`
	AddOnOption   AddOnOption `gorm:"constraint:OnDelete:CASCADE;" json:"addOnOption"`
	Quantity      int         `gorm:"not null" json:"quantity"`
}
