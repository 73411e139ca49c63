package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/awaleed99/bite-back0/internal/cache"
	"github.com/awaleed99/bite-back0/internal/config"
	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/notify"
	"github.com/awaleed99/bite-back0/internal/security"
)

// attemptsWindow is how long failed verification attempts are remembered.
const attemptsWindow = 5 * time.Minute

// OTP manages phone verification codes kept in the cache.
type OTP struct {
	cache       cache.Store
	notifier    notify.Notifier
	logger      *slog.Logger
	length      int
	ttl         time.Duration
	maxAttempts int
	cooldown    time.Duration
}

func NewOTP(store cache.Store, notifier notify.Notifier, cfg *config.Config, logger *slog.Logger) *OTP {
	return &OTP{
		cache:       store,
		notifier:    notifier,
		logger:      logger,
		length:      cfg.OTPLength,
		ttl:         cfg.OTPExpiration,
		maxAttempts: cfg.OTPMaxAttempts,
		cooldown:    cfg.OTPResendCooldown,
	}
}

// Issue stores a fresh code and sends it to the user's phone.
func (o *OTP) Issue(ctx context.Context, user *models.User) (string, error) {
	code, err := o.store(ctx, user.ID.String())
	if err != nil {
		return "", err
	}
	if err := o.deliver(ctx, user.Phone, code); err != nil {
		return "", err
	}
	return code, nil
}

// store saves a fresh code, starts the resend cooldown and clears the attempt
// counter.
func (o *OTP) store(ctx context.Context, userID string) (string, error) {
	code, err := security.RandomDigits(o.length)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	if err := o.cache.Set(ctx, domain.OTPKey(userID), code, o.ttl); err != nil {
		return "", err
	}
	if err := o.cache.Set(ctx, domain.OTPCooldownKey(userID), "1", o.cooldown); err != nil {
		return "", err
	}
	if err := o.cache.Del(ctx, domain.OTPAttemptsKey(userID)); err != nil {
		return "", err
	}
	return code, nil
}

func (o *OTP) deliver(ctx context.Context, phone, code string) error {
	if err := o.notifier.SendOTP(ctx, phone, code); err != nil {
		o.logger.WarnContext(ctx, "otp delivery failed", "error", err)
		return err
	}
	return nil
}

// CooldownRemaining returns how long the user must wait before a resend.
func (o *OTP) CooldownRemaining(ctx context.Context, userID string) (time.Duration, error) {
	ok, err := o.cache.Exists(ctx, domain.OTPCooldownKey(userID))
	if err != nil || !ok {
		return 0, err
	}
	ttl, err := o.cache.TTL(ctx, domain.OTPCooldownKey(userID))
	if err != nil {
		return 0, err
	}
	if ttl <= 0 {
		ttl = time.Second
	}
	return ttl, nil
}

// Check validates code. The attempt limit is enforced before the code is
// compared, so once exhausted even the right code is rejected.
func (o *OTP) Check(ctx context.Context, userID, code string) error {
	attempts, err := o.attempts(ctx, userID)
	if err != nil {
		return err
	}
	if attempts >= o.maxAttempts {
		return errTooManyOTPAttempts
	}

	stored, err := o.cache.Get(ctx, domain.OTPKey(userID))
	if errors.Is(err, cache.ErrMiss) {
		return errOTPExpired
	}
	if err != nil {
		return err
	}

	if stored != code {
		if _, err := o.cache.Incr(ctx, domain.OTPAttemptsKey(userID), attemptsWindow); err != nil {
			return err
		}
		return errOTPInvalid
	}
	return nil
}

// Consume removes the code and the attempt counter after a successful check.
func (o *OTP) Consume(ctx context.Context, userID string) error {
	return o.cache.Del(ctx, domain.OTPKey(userID), domain.OTPAttemptsKey(userID))
}

func (o *OTP) attempts(ctx context.Context, userID string) (int, error) {
	v, err := o.cache.Get(ctx, domain.OTPAttemptsKey(userID))
	if errors.Is(err, cache.ErrMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// unreadable counter locks verification until a new code is issued
		o.logger.WarnContext(ctx, "corrupt otp attempt counter", "user_id", userID)
		return o.maxAttempts, nil
	}
	return n, nil
}
