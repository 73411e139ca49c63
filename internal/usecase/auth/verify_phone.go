package auth

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
)

type VerifyPhone struct {
	repo domain.Repository
	otp  *OTP
}

func NewVerifyPhone(repo domain.Repository, otp *OTP) *VerifyPhone {
	return &VerifyPhone{repo: repo, otp: otp}
}

func (uc *VerifyPhone) Execute(ctx context.Context, userID uuid.UUID, code string) error {
	id := userID.String()

	if err := uc.otp.Check(ctx, id, code); err != nil {
		return err
	}

	if err := uc.repo.MarkPhoneVerified(ctx, userID); err != nil {
		return err
	}

	return uc.otp.Consume(ctx, id)
}
