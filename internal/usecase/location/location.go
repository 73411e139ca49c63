package location

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/location"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/models"
)

var errLocationNotFound = httperr.ErrNotFound("location_not_found", "Location not found")

func notFound(err error) error {
	if errors.Is(err, domain.ErrLocationNotFound) {
		return errLocationNotFound
	}
	return err
}

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	UserID    uuid.UUID
	Label     string
	Address   string
	Apartment *string
	Floor     *string
	Building  *string
	Landmark  *string
	Latitude  *float64
	Longitude *float64
	IsDefault bool
}

type Create struct {
	repo domain.Repository
}

func NewCreate(repo domain.Repository) *Create {
	return &Create{repo: repo}
}

// Execute stores a new address. The user's first address is always the default.
func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Location, error) {
	existing, err := uc.repo.Count(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	loc := &models.Location{
		UserID:    in.UserID,
		Label:     in.Label,
		Address:   in.Address,
		Apartment: in.Apartment,
		Floor:     in.Floor,
		Building:  in.Building,
		Landmark:  in.Landmark,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		IsDefault: in.IsDefault || existing == 0,
	}
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// ======================================================
// QUERIES
// ======================================================

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, userID uuid.UUID) ([]models.Location, error) {
	return uc.repo.List(ctx, userID)
}

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, userID, id uuid.UUID) (*models.Location, error) {
	loc, err := uc.repo.Find(ctx, userID, id)
	return loc, notFound(err)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

type Update struct {
	repo domain.Repository
}

func NewUpdate(repo domain.Repository) *Update {
	return &Update{repo: repo}
}

func (uc *Update) Execute(ctx context.Context, userID, id uuid.UUID, changes domain.Changes) (*models.Location, error) {
	loc, err := uc.repo.Find(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}

	changes.Apply(loc)
	if err := uc.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

type Remove struct {
	repo domain.Repository
}

func NewRemove(repo domain.Repository) *Remove {
	return &Remove{repo: repo}
}

func (uc *Remove) Execute(ctx context.Context, userID, id uuid.UUID) error {
	return notFound(uc.repo.Delete(ctx, userID, id))
}

type SetDefault struct {
	repo domain.Repository
}

func NewSetDefault(repo domain.Repository) *SetDefault {
	return &SetDefault{repo: repo}
}

func (uc *SetDefault) Execute(ctx context.Context, userID, id uuid.UUID) (*models.Location, error) {
	loc, err := uc.repo.SetDefault(ctx, userID, id)
	return loc, notFound(err)
}
