package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name   string
		unit   string
		addOns []LineAddOn
		qty    int
		want   string
	}{
		{"plain", "10.50", nil, 2, "21"},
		{"with add-ons", "8", []LineAddOn{{Price: d("1.25"), Quantity: 2}, {Price: d("0.5"), Quantity: 1}}, 3, "37.5"},
		{"exact cents", "0.1", []LineAddOn{{Price: d("0.2"), Quantity: 1}}, 3, "0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(d(tt.unit), tt.addOns, tt.qty)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestSummarize(t *testing.T) {
	restaurant := &models.Restaurant{Name: "Koshary", DeliveryFee: d("15"), MinOrderAmount: d("50")}
	restaurant.ID = uuid.New()

	burger := models.MenuItem{Name: "Burger", Price: d("100"), DiscountPrice: decimal.NewNullDecimal(d("80"))}
	fries := models.MenuItem{Name: "Fries", Price: d("25")}
	cheese := models.AddOnOption{Name: "Cheese", Price: d("10")}

	c := &models.Cart{
		Restaurant: restaurant,
		Items: []models.CartItem{
			{MenuItem: burger, Quantity: 2, AddOns: []models.CartItemAddOn{{AddOnOption: cheese, Quantity: 1}}},
			{MenuItem: fries, Quantity: 1},
		},
	}

	s := Summarize(c)

	require.Len(t, s.Items, 2)
	assert.True(t, d("180").Equal(s.Items[0].LineTotal), "discount price plus add-on, times two")
	assert.True(t, d("25").Equal(s.Items[1].LineTotal))
	assert.True(t, d("205").Equal(s.Subtotal))
	assert.Equal(t, 2, s.ItemCount)
	assert.Equal(t, 3, s.TotalQuantity)
	require.NotNil(t, s.Restaurant)
	assert.Equal(t, "Koshary", s.Restaurant.Name)
}

func TestSummarize_EmptyCartHasNoRestaurant(t *testing.T) {
	s := Summarize(&models.Cart{Restaurant: &models.Restaurant{Name: "x"}})

	assert.Nil(t, s.Restaurant)
	assert.True(t, s.Subtotal.IsZero())
	assert.NotNil(t, s.Items)
}

func TestCanAdd(t *testing.T) {
	r1, r2 := uuid.New(), uuid.New()
	item := &models.MenuItem{RestaurantID: r2, IsAvailable: true}

	assert.NoError(t, CanAdd(nil, false, item))
	assert.NoError(t, CanAdd(&r1, false, item), "stale binding on an empty cart is ignored")
	assert.NoError(t, CanAdd(&r2, true, item))

	err := CanAdd(&r1, true, item)
	assert.True(t, httperr.IsBusiness(err, "different_restaurant"))

	item.IsAvailable = false
	assert.True(t, httperr.IsBusiness(CanAdd(nil, false, item), "menu_item_unavailable"))
}

func TestValidateAddOn(t *testing.T) {
	item := &models.MenuItem{}
	item.ID = uuid.New()

	opt := &models.AddOnOption{IsAvailable: true}
	opt.Group.MenuItemID = item.ID
	assert.NoError(t, ValidateAddOn(item, opt))

	opt.Group.MenuItemID = uuid.New()
	assert.True(t, httperr.IsBusiness(ValidateAddOn(item, opt), "invalid_add_on"))
}
