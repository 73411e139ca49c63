package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/user"
	"github.com/awaleed99/bite-back0/internal/imaging"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/storage"
)

type UploadAvatar struct {
	repo    domain.Repository
	storage storage.Uploader
	logger  *slog.Logger
	now     func() time.Time
}

func NewUploadAvatar(repo domain.Repository, storage storage.Uploader, logger *slog.Logger) *UploadAvatar {
	return &UploadAvatar{repo: repo, storage: storage, logger: logger, now: time.Now}
}

// Execute converts the uploaded image to a 512px WebP, stores it and points
// the user's avatarUrl at it.
func (uc *UploadAvatar) Execute(ctx context.Context, userID uuid.UUID, image io.Reader) (*models.User, error) {
	u, err := findUser(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}

	data, err := imaging.Avatar(image)
	switch {
	case errors.Is(err, imaging.ErrUnsupportedImage):
		return nil, errAvatarFormat
	case errors.Is(err, imaging.ErrImageTooLarge):
		return nil, errAvatarTooLarge
	case err != nil:
		return nil, err
	}

	// new key per upload
	key := fmt.Sprintf("avatars/%s/%d.webp", u.ID, uc.now().UnixMilli())
	url, err := uc.storage.Upload(ctx, key, "image/webp", data)
	if errors.Is(err, storage.ErrNotConfigured) {
		return nil, errAvatarUnavailable
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAvatar(ctx, u.ID, url); err != nil {
		return nil, err
	}
	uc.logger.InfoContext(ctx, "avatar updated", "userId", u.ID, "bytes", len(data))

	u.AvatarURL = &url
	return u, nil
}
