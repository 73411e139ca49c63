package location

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaleed99/bite-back0/internal/db/dbtest"
	domain "github.com/awaleed99/bite-back0/internal/domain/location"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/infra/repository"
	"github.com/awaleed99/bite-back0/internal/models"
)

func setup(t *testing.T) (*repository.LocationGormRepository, uuid.UUID, uuid.UUID) {
	t.Helper()
	db := dbtest.New(t)
	ana := models.User{Email: "ana@example.com", Phone: "+201000000001", PasswordHash: "x", FullName: "Ana"}
	bob := models.User{Email: "bob@example.com", Phone: "+201000000002", PasswordHash: "x", FullName: "Bob"}
	require.NoError(t, db.Create(&ana).Error)
	require.NoError(t, db.Create(&bob).Error)
	return repository.NewLocationGormRepository(db), ana.ID, bob.ID
}

func create(t *testing.T, repo domain.Repository, userID uuid.UUID, label string, isDefault bool) *models.Location {
	t.Helper()
	loc, err := NewCreate(repo).Execute(context.Background(), CreateInput{
		UserID: userID, Label: label, Address: label + " street", IsDefault: isDefault,
	})
	require.NoError(t, err)
	// keep created_at strictly increasing
	time.Sleep(2 * time.Millisecond)
	return loc
}

func defaults(t *testing.T, repo domain.Repository, userID uuid.UUID) []string {
	t.Helper()
	list, err := NewList(repo).Execute(context.Background(), userID)
	require.NoError(t, err)
	var out []string
	for _, l := range list {
		if l.IsDefault {
			out = append(out, l.Label)
		}
	}
	return out
}

func TestCreate_DefaultHandling(t *testing.T) {
	repo, ana, _ := setup(t)

	home := create(t, repo, ana, "Home", false)
	assert.True(t, home.IsDefault, "first location is the default")

	create(t, repo, ana, "Work", false)
	assert.Equal(t, []string{"Home"}, defaults(t, repo, ana))

	create(t, repo, ana, "Gym", true)
	assert.Equal(t, []string{"Gym"}, defaults(t, repo, ana))

	list, err := NewList(repo).Execute(context.Background(), ana)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Gym", list[0].Label)
	assert.Equal(t, "Work", list[1].Label, "then newest first")
}

func TestGetAndUpdate(t *testing.T) {
	repo, ana, bob := setup(t)
	ctx := context.Background()
	home := create(t, repo, ana, "Home", false)
	work := create(t, repo, ana, "Work", false)

	_, err := NewGet(repo).Execute(ctx, bob, home.ID)
	assert.True(t, httperr.IsBusiness(err, "location_not_found"))

	floor := "7"
	label := "Office"
	isDefault := true
	updated, err := NewUpdate(repo).Execute(ctx, ana, work.ID, domain.Changes{Label: &label, Floor: &floor, IsDefault: &isDefault})
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Label)
	assert.Equal(t, "Work street, Floor 7", updated.FullAddress())
	assert.Equal(t, []string{"Office"}, defaults(t, repo, ana))

	_, err = NewUpdate(repo).Execute(ctx, bob, work.ID, domain.Changes{Label: &label})
	assert.True(t, httperr.IsBusiness(err, "location_not_found"))
}

func TestRemove_PromotesNewest(t *testing.T) {
	repo, ana, bob := setup(t)
	ctx := context.Background()
	home := create(t, repo, ana, "Home", false)
	create(t, repo, ana, "Work", false)
	create(t, repo, ana, "Gym", false)

	err := NewRemove(repo).Execute(ctx, bob, home.ID)
	assert.True(t, httperr.IsBusiness(err, "location_not_found"))

	require.NoError(t, NewRemove(repo).Execute(ctx, ana, home.ID))
	assert.Equal(t, []string{"Gym"}, defaults(t, repo, ana))
}

func TestSetDefault(t *testing.T) {
	repo, ana, _ := setup(t)
	ctx := context.Background()
	create(t, repo, ana, "Home", false)
	work := create(t, repo, ana, "Work", false)

	loc, err := NewSetDefault(repo).Execute(ctx, ana, work.ID)
	require.NoError(t, err)
	assert.True(t, loc.IsDefault)
	assert.Equal(t, []string{"Work"}, defaults(t, repo, ana))

	_, err = NewSetDefault(repo).Execute(ctx, ana, uuid.New())
	assert.True(t, httperr.IsBusiness(err, "location_not_found"))
}
