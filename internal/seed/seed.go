// Package seed loads demo data for local development.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/security"
)

type demoUser struct {
	email    string
	phone    string
	password string
	name     string
	role     models.Role
}

var demoUsers = []demoUser{
	{"admin@biteback.com", "+201000000000", "Admin123!", "Admin User", models.RoleAdmin},
	{"owner@restaurant.com", "+201111111111", "Owner123!", "Restaurant Owner", models.RoleRestaurantOwner},
	{"user@test.com", "+201234567890", "User123!", "Test User", models.RoleUser},
}

type option struct {
	name  string
	price int64
}

type group struct {
	name     string
	required bool
	max      int
	options  []option
}

type dish struct {
	name   string
	desc   string
	price  int64
	groups []group
}

type category struct {
	name   string
	dishes []dish
}

type restaurant struct {
	name     string
	desc     string
	address  string
	fee      int64
	minimum  int64
	minutes  int
	owned    bool
	category []category
}

var demoRestaurants = []restaurant{
	{
		name: "Burger Palace", desc: "The best burgers in town with premium ingredients",
		address: "456 Food Court, Cairo", fee: 25, minimum: 100, minutes: 30, owned: true,
		category: []category{
			{"Burgers", []dish{
				{"Classic Burger", "Juicy beef patty with lettuce, tomato, and our special sauce", 85, []group{
					{"Size", true, 1, []option{{"Regular", 0}, {"Large", 25}, {"Extra Large", 45}}},
					{"Extras", false, 5, []option{{"Extra Cheese", 15}, {"Bacon", 20}, {"Jalapeños", 10}, {"Fried Egg", 15}, {"Avocado", 25}}},
				}},
				{"Double Cheese Burger", "Two beef patties with melted cheddar cheese", 120, nil},
				{"Crispy Chicken Burger", "Crispy fried chicken with coleslaw", 95, nil},
			}},
			{"Sides", []dish{
				{"French Fries", "Golden crispy fries", 30, nil},
				{"Onion Rings", "Crispy battered onion rings", 35, nil},
			}},
			{"Drinks", []dish{
				{"Cola", "Ice cold cola", 15, nil},
			}},
		},
	},
	{
		name: "Pizza House", desc: "Authentic Italian pizzas baked in wood-fired oven",
		address: "789 Italian Street, Cairo", fee: 20, minimum: 150, minutes: 40, owned: true,
		category: []category{
			{"Pizzas", []dish{
				{"Margherita", "Classic tomato, mozzarella, and basil", 120, []group{
					{"Crust", true, 1, []option{{"Classic", 0}, {"Thin", 0}, {"Stuffed", 30}}},
				}},
				{"Pepperoni", "Loaded with pepperoni and cheese", 145, nil},
			}},
		},
	},
	{
		name: "Sushi Master", desc: "Fresh sushi and Japanese cuisine",
		address: "321 Japan Avenue, Cairo", fee: 35, minimum: 200, minutes: 45,
		category: []category{
			{"Rolls", []dish{
				{"California Roll", "Crab, avocado and cucumber", 160, nil},
				{"Salmon Nigiri", "Fresh salmon over seasoned rice", 140, nil},
			}},
		},
	},
}

// wipeOrder lists tables children first so foreign keys never block a delete.
var wipeOrder = []any{
	&models.AuditLog{},
	&models.OrderItemAddOn{},
	&models.OrderItem{},
	&models.PaymentTransaction{},
	&models.Order{},
	&models.CartItemAddOn{},
	&models.CartItem{},
	&models.Cart{},
	&models.AddOnOption{},
	&models.AddOnGroup{},
	&models.MenuItem{},
	&models.MenuCategory{},
	&models.Restaurant{},
	&models.PaymentMethod{},
	&models.Location{},
	&models.NotificationSettings{},
	&models.PasswordResetToken{},
	&models.RefreshToken{},
	&models.User{},
}

// Summary counts what Run created.
type Summary struct {
	Users       int
	Restaurants int
	MenuItems   int
	AddOns      int
}

// Run replaces all data with the demo data set in one transaction.
func Run(ctx context.Context, db *gorm.DB, hasher *security.PasswordHasher) (*Summary, error) {
	var sum Summary

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range wipeOrder {
			if err := all.Delete(m).Error; err != nil {
				return fmt.Errorf("wipe %T: %w", m, err)
			}
		}

		users := make(map[models.Role]*models.User, len(demoUsers))
		for _, du := range demoUsers {
			hash, err := hasher.Hash(du.password)
			if err != nil {
				return err
			}
			u := &models.User{
				Email:           du.email,
				Phone:           du.phone,
				PasswordHash:    hash,
				FullName:        du.name,
				Role:            du.role,
				IsPhoneVerified: true,
				IsEmailVerified: true,
			}
			if err := tx.Create(u).Error; err != nil {
				return fmt.Errorf("create user %s: %w", du.email, err)
			}
			settings := models.DefaultNotificationSettings(u.ID)
			if err := tx.Create(&settings).Error; err != nil {
				return fmt.Errorf("create settings: %w", err)
			}
			users[du.role] = u
			sum.Users++
		}

		customer := users[models.RoleUser]
		if err := tx.Create(&models.PaymentMethod{
			UserID:         customer.ID,
			Type:           models.PaymentMethodCreditCard,
			CardToken:      "tok_demo_visa_4242",
			LastFourDigits: "4242",
			CardBrand:      "Visa",
			ExpiryMonth:    12,
			ExpiryYear:     2030,
			IsDefault:      true,
		}).Error; err != nil {
			return fmt.Errorf("create payment method: %w", err)
		}

		building, floor, apt, landmark := "Tower A", "5", "502", "Near the main mall"
		lat, lng := 30.0444, 31.2357
		if err := tx.Create(&models.Location{
			UserID:    customer.ID,
			Label:     "Home",
			Address:   "123 Main Street, Cairo, Egypt",
			Building:  &building,
			Floor:     &floor,
			Apartment: &apt,
			Landmark:  &landmark,
			Latitude:  &lat,
			Longitude: &lng,
			IsDefault: true,
		}).Error; err != nil {
			return fmt.Errorf("create location: %w", err)
		}

		owner := users[models.RoleRestaurantOwner]
		for _, dr := range demoRestaurants {
			r := &models.Restaurant{
				Name:                dr.name,
				Description:         dr.desc,
				Address:             dr.address,
				DeliveryFee:         decimal.NewFromInt(dr.fee),
				MinOrderAmount:      decimal.NewFromInt(dr.minimum),
				DeliveryTimeMinutes: dr.minutes,
				IsActive:            true,
			}
			if dr.owned {
				r.OwnerID = &owner.ID
			}
			if err := tx.Omit("Owner").Create(r).Error; err != nil {
				return fmt.Errorf("create restaurant %s: %w", dr.name, err)
			}
			sum.Restaurants++

			items, addOns, err := createMenu(tx, r.ID, dr.category)
			if err != nil {
				return err
			}
			sum.MenuItems += items
			sum.AddOns += addOns
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

func createMenu(tx *gorm.DB, restaurantID uuid.UUID, categories []category) (items, addOns int, err error) {
	for i, dc := range categories {
		cat := &models.MenuCategory{RestaurantID: restaurantID, Name: dc.name, SortOrder: i + 1}
		if err := tx.Create(cat).Error; err != nil {
			return 0, 0, fmt.Errorf("create category %s: %w", dc.name, err)
		}

		for _, dd := range dc.dishes {
			item := &models.MenuItem{
				RestaurantID: restaurantID,
				CategoryID:   cat.ID,
				Name:         dd.name,
				Description:  dd.desc,
				Price:        decimal.NewFromInt(dd.price),
				IsAvailable:  true,
			}
			if err := tx.Omit("Restaurant").Create(item).Error; err != nil {
				return 0, 0, fmt.Errorf("create menu item %s: %w", dd.name, err)
			}
			items++

			for _, dg := range dd.groups {
				g := &models.AddOnGroup{
					MenuItemID:    item.ID,
					Name:          dg.name,
					IsRequired:    dg.required,
					MaxSelections: dg.max,
				}
				if err := tx.Create(g).Error; err != nil {
					return 0, 0, fmt.Errorf("create add-on group %s: %w", dg.name, err)
				}
				for _, do := range dg.options {
					opt := &models.AddOnOption{
						GroupID:     g.ID,
						Name:        do.name,
						Price:       decimal.NewFromInt(do.price),
						IsAvailable: true,
					}
					if err := tx.Omit("Group").Create(opt).Error; err != nil {
						return 0, 0, fmt.Errorf("create add-on %s: %w", do.name, err)
					}
					addOns++
				}
			}
		}
	}
	return items, addOns, nil
}
