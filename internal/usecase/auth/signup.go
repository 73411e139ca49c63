package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/audit"
	"github.com/awaleed99/bite-back0/internal/config"
	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/security"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SignupInput struct {
	Email    string
	Phone    string
	Password string
	FullName string
}

type SignupOutput struct {
	User   *models.User
	Tokens *TokenPair
	// OTP is only filled outside production.
	OTP string
}

// ======================================================
// USE CASE
// ======================================================

type Signup struct {
	repo      domain.Repository
	hasher    *security.PasswordHasher
	sessions  sessionIssuer
	otp       *OTP
	audit     audit.Recorder
	exposeOTP bool
}

func NewSignup(
	repo domain.Repository,
	hasher *security.PasswordHasher,
	tokens *security.TokenManager,
	otp *OTP,
	audit audit.Recorder,
	cfg *config.Config,
) *Signup {
	return &Signup{
		repo:      repo,
		hasher:    hasher,
		sessions:  sessionIssuer{repo: repo, tokens: tokens},
		otp:       otp,
		audit:     audit,
		exposeOTP: !cfg.IsProduction(),
	}
}

func (uc *Signup) Execute(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	email := domain.NormalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)

	// --------------------------------------------------
	// 1. Uniqueness (the unique indexes still guard races)
	// --------------------------------------------------
	if _, err := uc.repo.FindUserByEmail(ctx, email); err == nil {
		return nil, errEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := uc.repo.FindUserByPhone(ctx, phone); err == nil {
		return nil, errPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// 2. User + default settings
	// --------------------------------------------------
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(in.FullName),
		Role:         models.RoleUser,
	}
	user.ID = uuid.New()
	settings := models.DefaultNotificationSettings(user.ID)

	// --------------------------------------------------
	// 3. OTP + tokens, prepared before anything is committed
	// --------------------------------------------------
	code, err := uc.otp.store(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	tokens, refresh, err := uc.sessions.sign(user)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateUser(ctx, user, &settings, refresh); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return nil, errEmailTaken
		case errors.Is(err, domain.ErrPhoneTaken):
			return nil, errPhoneTaken
		}
		return nil, err
	}

	// the account is usable from here on; a lost SMS is recovered with resend-otp
	_ = uc.otp.deliver(ctx, user.Phone, code)

	uc.audit.Record(ctx, audit.Event{
		UserID:   audit.Ptr(user.ID),
		Action:   "user_signed_up",
		Entity:   "user",
		EntityID: audit.Ptr(user.ID),
	})

	out := &SignupOutput{User: user, Tokens: tokens}
	if uc.exposeOTP {
		out.OTP = code
	}
	return out, nil
}
