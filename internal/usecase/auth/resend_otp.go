package auth

import (
	"context"
	"errors"
	"fmt"
	"math"

	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/httperr"
)

type ResendOTP struct {
	repo domain.Repository
	otp  *OTP
}

func NewResendOTP(repo domain.Repository, otp *OTP) *ResendOTP {
	return &ResendOTP{repo: repo, otp: otp}
}

// Execute issues a new code unless the resend cooldown is still running.
// The returned string is the code itself and is meant for non-production echo only.
func (uc *ResendOTP) Execute(ctx context.Context, emailOrPhone string) (string, error) {
	user, err := uc.repo.FindUserByEmailOrPhone(ctx, domain.NormalizeIdentifier(emailOrPhone))
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", errUserNotFound
	}
	if err != nil {
		return "", err
	}

	remaining, err := uc.otp.CooldownRemaining(ctx, user.ID.String())
	if err != nil {
		return "", err
	}
	if remaining > 0 {
		secs := int(math.Ceil(remaining.Seconds()))
		return "", httperr.ErrBadRequest(
			"otp_cooldown",
			fmt.Sprintf("Please wait %d seconds before requesting a new OTP", secs),
		).WithDetails(map[string]int{"retryAfterSeconds": secs})
	}

	return uc.otp.Issue(ctx, user)
}
