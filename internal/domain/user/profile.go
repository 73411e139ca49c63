package user

import (
	"github.com/awaleed99/bite-back0/internal/models"
)

// ProfileChanges holds the optional fields of a profile update; nil means unchanged.
type ProfileChanges struct {
	FullName *string
	Email    *string
	Phone    *string
}

// Apply writes changes onto u. A new email clears the email-verified flag and a
// new phone clears the phone-verified flag. Values equal to the current ones
// are not changes.
func (c ProfileChanges) Apply(u *models.User) {
	if c.FullName != nil {
		u.FullName = *c.FullName
	}
	if c.Email != nil && *c.Email != u.Email {
		u.Email = *c.Email
		u.IsEmailVerified = false
	}
	if c.Phone != nil && *c.Phone != u.Phone {
		u.Phone = *c.Phone
		u.IsPhoneVerified = false
	}
}

// SettingsChanges is a partial update of notification preferences.
type SettingsChanges struct {
	PushNotifications *bool
	SMSNotifications  *bool
	PromotionalEmails *bool
	OrderUpdates      *bool
}

func (c SettingsChanges) Apply(s *models.NotificationSettings) {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.PushNotifications, c.PushNotifications)
	set(&s.SMSNotifications, c.SMSNotifications)
	set(&s.PromotionalEmails, c.PromotionalEmails)
	set(&s.OrderUpdates, c.OrderUpdates)
}
