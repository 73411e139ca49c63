package location

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/models"
)

var ErrLocationNotFound = errors.New("location not found")

// Repository keeps at most one default location per user.
type Repository interface {
	Count(ctx context.Context, userID uuid.UUID) (int64, error)

	// Create stores loc; when loc.IsDefault is set every other location of the
	// user loses the flag in the same transaction.
	Create(ctx context.Context, loc *models.Location) error

	// List returns the default location first, then newest first.
	List(ctx context.Context, userID uuid.UUID) ([]models.Location, error)
	Find(ctx context.Context, userID, id uuid.UUID) (*models.Location, error)

	// Update saves loc; same default handling as Create.
	Update(ctx context.Context, loc *models.Location) error

	// Delete removes the location. When it was the default, the newest
	// remaining location becomes the default.
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SetDefault(ctx context.Context, userID, id uuid.UUID) (*models.Location, error)
}
