package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===============================
// Restaurant / Menu (reference data)
// ===============================

type Restaurant struct {
	BaseModel

	OwnerID *uuid.UUID `gorm:"type:uuid;index" json:"ownerId"`
	Owner   *User      `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	Name        string  `gorm:"size:150;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	LogoURL     *string `gorm:"size:512" json:"logoUrl"`
	Address     string  `gorm:"size:255" json:"address"`

	DeliveryFee         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"deliveryFee"`
	MinOrderAmount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"minOrderAmount"`
	DeliveryTimeMinutes int             `gorm:"not null;default:30" json:"deliveryTimeMinutes"`
	IsActive            bool            `gorm:"not null" json:"isActive"`

	Categories []MenuCategory `json:"categories,omitempty"`
}

type MenuCategory struct {
	BaseModel

	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurantId"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	SortOrder    int       `gorm:"not null;default:0" json:"sortOrder"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

type MenuItem struct {
	BaseModel

	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CategoryID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"categoryId"`

	Name          string              `gorm:"size:150;not null" json:"name"`
	Description   string              `gorm:"type:text" json:"description"`
	ImageURL      *string             `gorm:"size:512" json:"imageUrl"`
	Price         decimal.Decimal     `gorm:"type:numeric(10,2);not null" json:"price"`
	DiscountPrice decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"discountPrice"`
	IsAvailable   bool                `gorm:"not null" json:"isAvailable"`

	AddOnGroups []AddOnGroup `json:"addOnGroups,omitempty"`
}

// EffectivePrice is the discount price when one is set, otherwise the list price.
func (m *MenuItem) EffectivePrice() decimal.Decimal {
	if m.DiscountPrice.Valid {
		return m.DiscountPrice.Decimal
	}
	return m.Price
}

type AddOnGroup struct {
	BaseModel

	MenuItemID    uuid.UUID `gorm:"type:uuid;not null;index" json:"menuItemId"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	IsRequired    bool      `gorm:"not null" json:"isRequired"`
	MaxSelections int       `gorm:"not null;default:1" json:"maxSelections"`

	Options []AddOnOption `gorm:"foreignKey:GroupID" json:"options,omitempty"`
}

type AddOnOption struct {
	BaseModel

	GroupID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"groupId"`
	Group       AddOnGroup      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	IsAvailable bool            `gorm:"not null" json:"isAvailable"`
}
