package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser            Role = "USER"
	RoleRestaurantOwner Role = "RESTAURANT_OWNER"
	RoleAdmin           Role = "ADMIN"
)

type User struct {
	BaseModel

	Email        string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone        string  `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	FullName     string  `gorm:"size:100;not null" json:"fullName"`
	AvatarURL    *string `gorm:"size:512" json:"avatarUrl"`
	Role         Role    `gorm:"size:20;not null;default:'USER'" json:"role"`

	IsPhoneVerified bool `gorm:"not null;default:false" json:"isPhoneVerified"`
	IsEmailVerified bool `gorm:"not null;default:false" json:"isEmailVerified"`
}

// RefreshToken rows are never deleted; revocation and rotation are recorded in place.
type RefreshToken struct {
	BaseModel

	Token  string    `gorm:"type:text;uniqueIndex;not null" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	ExpiresAt       time.Time  `gorm:"not null" json:"expiresAt"`
	RevokedAt       *time.Time `json:"revokedAt"`
	ReplacedByToken *string    `gorm:"type:text" json:"-"`
}

func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

type PasswordResetToken struct {
	BaseModel

	Token  string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	ExpiresAt time.Time  `gorm:"not null" json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt"`
}

type NotificationSettings struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`

	PushNotifications bool `gorm:"not null" json:"pushNotifications"`
	SMSNotifications  bool `gorm:"not null" json:"smsNotifications"`
	PromotionalEmails bool `gorm:"not null" json:"promotionalEmails"`
	OrderUpdates      bool `gorm:"not null" json:"orderUpdates"`
}

// DefaultNotificationSettings returns the settings every new account starts with.
func DefaultNotificationSettings(userID uuid.UUID) NotificationSettings {
	return NotificationSettings{
		UserID:            userID,
		PushNotifications: true,
		SMSNotifications:  true,
		PromotionalEmails: false,
		OrderUpdates:      true,
	}
}
