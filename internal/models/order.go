package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Order keeps a snapshot of names and prices; later menu edits do not change it.
type Order struct {
	BaseModel

	OrderNumber string `gorm:"size:40;uniqueIndex;not null" json:"orderNumber"`

	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"userId"`
	User         *User       `json:"user,omitempty"`
	RestaurantID uuid.UUID   `gorm:"type:uuid;not null;index" json:"restaurantId"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
	// LocationID is cleared when the address is deleted; DeliveryAddress keeps the snapshot.
	LocationID *uuid.UUID `gorm:"type:uuid;index" json:"locationId"`
	Location   *Location  `gorm:"constraint:OnDelete:SET NULL;" json:"location"`

	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"deliveryFee"`
	VATAmount     decimal.Decimal `gorm:"column:vat_amount;type:numeric(10,2);not null" json:"vatAmount"`
	VATPercentage decimal.Decimal `gorm:"column:vat_percentage;type:numeric(5,2);not null" json:"vatPercentage"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`

	Status        string        `gorm:"size:30;not null;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null" json:"paymentStatus"`

	DeliveryAddress       string     `gorm:"size:512;not null" json:"deliveryAddress"`
	DeliveryInstructions  *string    `gorm:"type:text" json:"deliveryInstructions"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime"`

	PlacedAt           *time.Time `json:"placedAt"`
	ConfirmedAt        *time.Time `json:"confirmedAt"`
	PreparingAt        *time.Time `json:"preparingAt"`
	OutForDeliveryAt   *time.Time `json:"outForDeliveryAt"`
	DeliveredAt        *time.Time `json:"deliveredAt"`
	CancelledAt        *time.Time `json:"cancelledAt"`
	CancellationReason *string    `gorm:"type:text" json:"cancellationReason"`

	Items       []OrderItem         `gorm:"constraint:OnDelete:CASCADE;" json:"items,omitempty"`
	Transaction *PaymentTransaction `json:"transaction,omitempty"`
}

type OrderItem struct {
	BaseModel

	OrderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null" json:"menuItemId"`

	Name                string          `gorm:"size:150;not null" json:"name"`
	Price               decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity            int             `gorm:"not null" json:"quantity"`
	Subtotal            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	SpecialInstructions *string         `gorm:"type:text" json:"specialInstructions"`

	AddOns []OrderItemAddOn `gorm:"constraint:OnDelete:CASCADE;" json:"addOns"`
}

type OrderItemAddOn struct {
	BaseModel

	OrderItemID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"orderItemId"`
	AddOnOptionID uuid.UUID       `gorm:"type:uuid;not null" json:"addOnOptionId"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
}

type PaymentTransaction struct {
	BaseModel

	OrderID         uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"orderId"`
	PaymentMethodID uuid.UUID       `gorm:"type:uuid;not null;index" json:"paymentMethodId"`
	Amount          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status          PaymentStatus   `gorm:"size:20;not null" json:"status"`
	TransactionRef  string          `gorm:"size:100;not null" json:"transactionRef"`
	Gateway         string          `gorm:"size:30;not null" json:"gateway"`
	ProcessedAt     *time.Time      `json:"processedAt"`
}
