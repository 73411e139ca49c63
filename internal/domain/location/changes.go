package location

import "github.com/awaleed99/bite-back0/internal/models"

// Changes is a partial location update; nil fields are left as they are.
type Changes struct {
	Label     *string
	Address   *string
	Apartment *string
	Floor     *string
	Building  *string
	Landmark  *string
	Latitude  *float64
	Longitude *float64
	IsDefault *bool
}

func (c Changes) Apply(l *models.Location) {
	if c.Label != nil {
		l.Label = *c.Label
	}
	if c.Address != nil {
		l.Address = *c.Address
	}
	if c.Apartment != nil {
		l.Apartment = c.Apartment
	}
	if c.Floor != nil {
		l.Floor = c.Floor
	}
	if c.Building != nil {
		l.Building = c.Building
	}
	if c.Landmark != nil {
		l.Landmark = c.Landmark
	}
	if c.Latitude != nil {
		l.Latitude = c.Latitude
	}
	if c.Longitude != nil {
		l.Longitude = c.Longitude
	}
	// a default location is only replaced by promoting another one
	if c.IsDefault != nil && *c.IsDefault {
		l.IsDefault = true
	}
}
