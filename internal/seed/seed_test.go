package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaleed99/bite-back0/internal/db/dbtest"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/security"
)

func TestRun(t *testing.T) {
	gdb := dbtest.New(t)
	hasher := security.NewPasswordHasher(4)

	sum, err := Run(context.Background(), gdb, hasher)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Users)
	assert.Equal(t, 3, sum.Restaurants)
	assert.Equal(t, 10, sum.MenuItems)
	assert.Equal(t, 11, sum.AddOns)

	var admin models.User
	require.NoError(t, gdb.Where("email = ?", "admin@biteback.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.IsPhoneVerified)
	assert.True(t, hasher.Compare(admin.PasswordHash, "Admin123!"))

	var customer models.User
	require.NoError(t, gdb.Where("email = ?", "user@test.com").First(&customer).Error)

	var pm models.PaymentMethod
	require.NoError(t, gdb.Where("user_id = ?", customer.ID).First(&pm).Error)
	assert.Equal(t, "4242", pm.LastFourDigits)
	assert.True(t, pm.IsDefault)

	var loc models.Location
	require.NoError(t, gdb.Where("user_id = ?", customer.ID).First(&loc).Error)
	assert.Equal(t, "Home", loc.Label)
	assert.True(t, loc.IsDefault)

	var burger models.MenuItem
	require.NoError(t, gdb.Preload("AddOnGroups.Options").Where("name = ?", "Classic Burger").First(&burger).Error)
	require.Len(t, burger.AddOnGroups, 2)
	assert.True(t, burger.Price.Equal(decimal.NewFromInt(85)))

	var settings int64
	require.NoError(t, gdb.Model(&models.NotificationSettings{}).Count(&settings).Error)
	assert.EqualValues(t, 3, settings)
}

func TestRun_ReplacesExistingData(t *testing.T) {
	gdb := dbtest.New(t)
	hasher := security.NewPasswordHasher(4)
	ctx := context.Background()

	_, err := Run(ctx, gdb, hasher)
	require.NoError(t, err)
	_, err = Run(ctx, gdb, hasher)
	require.NoError(t, err)

	var users, restaurants int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, gdb.Model(&models.Restaurant{}).Count(&restaurants).Error)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 3, restaurants)
}
