package models

import "github.com/google/uuid"

type PaymentMethodType string

const (
	PaymentMethodCreditCard PaymentMethodType = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethodType = "DEBIT_CARD"
)

// PaymentMethod holds a gateway token only. Card number and CVV are never stored.
type PaymentMethod struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`

	Type           PaymentMethodType `gorm:"size:20;not null" json:"type"`
	CardToken      string            `gorm:"size:255;not null" json:"-"`
	LastFourDigits string            `gorm:"size:4;not null" json:"lastFourDigits"`
	CardBrand      string            `gorm:"size:20;not null" json:"cardBrand"`
	ExpiryMonth    int               `gorm:"not null" json:"expiryMonth"`
	ExpiryYear     int               `gorm:"not null" json:"expiryYear"`
	IsDefault      bool              `gorm:"not null" json:"isDefault"`
}
