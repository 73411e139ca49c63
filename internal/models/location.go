package models

import "github.com/google/uuid"

type Location struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`

	Label     string   `gorm:"size:50;not null" json:"label"`
	Address   string   `gorm:"size:255;not null" json:"address"`
	Apartment *string  `gorm:"size:50" json:"apartment"`
	Floor     *string  `gorm:"size:20" json:"floor"`
	Building  *string  `gorm:"size:100" json:"building"`
	Landmark  *string  `gorm:"size:255" json:"landmark"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsDefault bool     `gorm:"not null" json:"isDefault"`
}

// FullAddress renders the address the way it is printed on an order.
func (l *Location) FullAddress() string {
	s := l.Address
	if l.Building != nil && *l.Building != "" {
		s += ", " + *l.Building
	}
	if l.Floor != nil && *l.Floor != "" {
		s += ", Floor " + *l.Floor
	}
	if l.Apartment != nil && *l.Apartment != "" {
		s += ", Apt " + *l.Apartment
	}
	return s
}
