package auth

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/awaleed99/bite-back0/internal/audit"
	"github.com/awaleed99/bite-back0/internal/cache"
	"github.com/awaleed99/bite-back0/internal/config"
	"github.com/awaleed99/bite-back0/internal/db/dbtest"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/infra/repository"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/security"
)

// fakeNotifier remembers the last code / reset token sent to each recipient.
type fakeNotifier struct {
	mu     sync.Mutex
	codes  map[string]string
	resets map[string]string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{codes: map[string]string{}, resets: map[string]string{}}
}

func (n *fakeNotifier) SendOTP(_ context.Context, phone, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.codes[phone] = code
	return nil
}

func (n *fakeNotifier) SendPasswordReset(_ context.Context, email, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resets[email] = token
	return nil
}

type testEnv struct {
	db       *gorm.DB
	mr       *miniredis.Miniredis
	notifier *fakeNotifier
	tokens   *security.TokenManager

	signup       *Signup
	login        *Login
	verifyPhone  *VerifyPhone
	resendOTP    *ResendOTP
	forgot       *ForgotPassword
	reset        *ResetPassword
	refresh      *RefreshToken
	logout       *Logout
	authenticate *Authenticate
}

func testConfig() *config.Config {
	return &config.Config{
		Env:                     "development",
		JWTAccessSecret:         "access",
		JWTAccessTTL:            15 * time.Minute,
		JWTRefreshSecret:        "refresh",
		JWTRefreshTTL:           7 * 24 * time.Hour,
		BcryptCost:              bcrypt.MinCost,
		OTPLength:               6,
		OTPExpiration:           5 * time.Minute,
		OTPMaxAttempts:          5,
		OTPResendCooldown:       60 * time.Second,
		PasswordResetExpiration: 30 * time.Minute,
	}
}

func setupTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	gdb := dbtest.New(t)
	mr := miniredis.RunT(t)
	store := cache.NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	repo := repository.NewAuthGormRepository(gdb)
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokens := security.NewTokenManager(cfg)
	notifier := newFakeNotifier()
	otp := NewOTP(store, notifier, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &testEnv{
		db:           gdb,
		mr:           mr,
		notifier:     notifier,
		tokens:       tokens,
		signup:       NewSignup(repo, hasher, tokens, otp, audit.Discard, cfg),
		login:        NewLogin(repo, hasher, tokens),
		verifyPhone:  NewVerifyPhone(repo, otp),
		resendOTP:    NewResendOTP(repo, otp),
		forgot:       NewForgotPassword(repo, notifier, cfg),
		reset:        NewResetPassword(repo, hasher, audit.Discard),
		refresh:      NewRefreshToken(repo, tokens),
		logout:       NewLogout(repo, store, tokens, audit.Discard),
		authenticate: NewAuthenticate(repo, store, tokens),
	}
}

func (e *testEnv) signupUser(t *testing.T, email, phone string) *SignupOutput {
	t.Helper()
	out, err := e.signup.Execute(context.Background(), SignupInput{
		Email:    email,
		Phone:    phone,
		Password: "Secret@123",
		FullName: "Ana Test",
	})
	require.NoError(t, err)
	return out
}

func TestSignup(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()

	out := env.signupUser(t, "Ana@Example.com", "+201000000001")

	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, models.RoleUser, out.User.Role)
	assert.False(t, out.User.IsPhoneVerified)
	assert.NotEqual(t, "Secret@123", out.User.PasswordHash)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	assert.NotEmpty(t, out.Tokens.RefreshToken)
	assert.Len(t, out.OTP, 6)
	assert.Equal(t, out.OTP, env.notifier.codes["+201000000001"])

	var settings models.NotificationSettings
	require.NoError(t, env.db.Where("user_id = ?", out.User.ID).First(&settings).Error)
	assert.True(t, settings.OrderUpdates)

	var rt models.RefreshToken
	require.NoError(t, env.db.Where("token = ?", out.Tokens.RefreshToken).First(&rt).Error)
	assert.Equal(t, out.User.ID, rt.UserID)

	t.Run("duplicate email differs only by case", func(t *testing.T) {
		_, err := env.signup.Execute(ctx, SignupInput{
			Email: "ANA@example.com", Phone: "+201000000009", Password: "Secret@123", FullName: "Other",
		})
		require.Error(t, err)
		assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
		assert.True(t, httperr.IsBusiness(err, "email_already_registered"))
	})

	t.Run("duplicate phone", func(t *testing.T) {
		_, err := env.signup.Execute(ctx, SignupInput{
			Email: "other@example.com", Phone: "+201000000001", Password: "Secret@123", FullName: "Other",
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "phone_already_registered"))
	})

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignup_CacheDownLeavesNoAccount(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	in := SignupInput{
		Email:    "down@example.com",
		Phone:    "+201000000077",
		Password: "Secret@123",
		FullName: "Cache Down",
	}

	env.mr.Close()
	_, err := env.signup.Execute(ctx, in)
	require.Error(t, err)

	var users, tokens int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, env.db.Model(&models.RefreshToken{}).Count(&tokens).Error)
	assert.Zero(t, users)
	assert.Zero(t, tokens)

	require.NoError(t, env.mr.Restart())
	out, err := env.signup.Execute(ctx, in)
	require.NoError(t, err, "retrying after the outage must not hit a conflict")
	assert.Equal(t, out.OTP, env.notifier.codes[in.Phone])

	require.NoError(t, env.db.Model(&models.RefreshToken{}).Where("user_id = ?", out.User.ID).Count(&tokens).Error)
	assert.EqualValues(t, 1, tokens)
}

func TestSignup_HidesOTPInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Env = "production"
	env := setupTestEnv(t, cfg)

	out := env.signupUser(t, "ana@example.com", "+201000000001")
	assert.Empty(t, out.OTP)
	assert.Len(t, env.notifier.codes["+201000000001"], 6)
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	env.signupUser(t, "ana@example.com", "+201000000001")

	t.Run("by email, case insensitive", func(t *testing.T) {
		out, err := env.login.Execute(ctx, "ANA@example.com", "Secret@123")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", out.User.Email)
	})

	t.Run("by phone", func(t *testing.T) {
		_, err := env.login.Execute(ctx, "+201000000001", "Secret@123")
		require.NoError(t, err)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := env.login.Execute(ctx, "nobody@example.com", "Secret@123")
		_, errWrong := env.login.Execute(ctx, "ana@example.com", "Wrong@123")

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(errUnknown))
	})

	t.Run("sessions coexist", func(t *testing.T) {
		a, err := env.login.Execute(ctx, "ana@example.com", "Secret@123")
		require.NoError(t, err)
		b, err := env.login.Execute(ctx, "ana@example.com", "Secret@123")
		require.NoError(t, err)

		_, err = env.refresh.Execute(ctx, a.Tokens.RefreshToken)
		assert.NoError(t, err)
		_, err = env.refresh.Execute(ctx, b.Tokens.RefreshToken)
		assert.NoError(t, err)
	})
}

func TestVerifyPhone_AttemptLimitAndResend(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	out := env.signupUser(t, "ana@example.com", "+201000000001")
	userID := out.User.ID

	wrong := "000000"
	if out.OTP == wrong {
		wrong = "111111"
	}

	for i := 0; i < 5; i++ {
		err := env.verifyPhone.Execute(ctx, userID, wrong)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "otp_invalid"), "attempt %d", i+1)
	}

	// limit reached: even the right code is refused
	err := env.verifyPhone.Execute(ctx, userID, out.OTP)
	assert.True(t, httperr.IsBusiness(err, "otp_too_many_attempts"))

	// resend is still on cooldown from signup
	_, err = env.resendOTP.Execute(ctx, "ana@example.com")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "otp_cooldown"))
	assert.Equal(t, httperr.KindBadRequest, httperr.KindOf(err))

	env.mr.FastForward(61 * time.Second)

	code, err := env.resendOTP.Execute(ctx, "+201000000001")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	require.NoError(t, env.verifyPhone.Execute(ctx, userID, code))

	var user models.User
	require.NoError(t, env.db.First(&user, "id = ?", userID).Error)
	assert.True(t, user.IsPhoneVerified)

	// code is single use
	err = env.verifyPhone.Execute(ctx, userID, code)
	assert.True(t, httperr.IsBusiness(err, "otp_expired"))
}

func TestVerifyPhone_CorruptAttemptCounterLocks(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	out := env.signupUser(t, "corrupt@example.com", "+201000000078")

	require.NoError(t, env.mr.Set("otp_attempts:"+out.User.ID.String(), "not-a-number"))

	err := env.verifyPhone.Execute(ctx, out.User.ID, out.OTP)
	assert.True(t, httperr.IsBusiness(err, "otp_too_many_attempts"))
}

func TestVerifyPhone_ExpiredCode(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	out := env.signupUser(t, "ana@example.com", "+201000000001")

	env.mr.FastForward(5*time.Minute + time.Second)

	err := env.verifyPhone.Execute(ctx, out.User.ID, out.OTP)
	assert.True(t, httperr.IsBusiness(err, "otp_expired"))
}

func TestResendOTP_UnknownUser(t *testing.T) {
	env := setupTestEnv(t, testConfig())

	_, err := env.resendOTP.Execute(context.Background(), "ghost@example.com")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestRefreshToken_Rotation(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	out := env.signupUser(t, "ana@example.com", "+201000000001")
	first := out.Tokens.RefreshToken

	second, err := env.refresh.Execute(ctx, first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second.RefreshToken)

	var old models.RefreshToken
	require.NoError(t, env.db.Where("token = ?", first).First(&old).Error)
	require.NotNil(t, old.RevokedAt)
	require.NotNil(t, old.ReplacedByToken)
	assert.Equal(t, second.RefreshToken, *old.ReplacedByToken)

	// reuse of a rotated token fails
	_, err = env.refresh.Execute(ctx, first)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_refresh_token"))

	// the replacement still works
	_, err = env.refresh.Execute(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshToken_RejectsAccessTokenAndGarbage(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	out := env.signupUser(t, "ana@example.com", "+201000000001")

	for _, tok := range []string{out.Tokens.AccessToken, "garbage", ""} {
		_, err := env.refresh.Execute(ctx, tok)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_refresh_token"))
	}
}

func TestLogout(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	out := env.signupUser(t, "ana@example.com", "+201000000001")

	p, err := env.authenticate.Execute(ctx, out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, p.ID)
	assert.Equal(t, models.RoleUser, p.Role)

	require.NoError(t, env.logout.Execute(ctx, out.User.ID, out.Tokens.AccessToken))

	_, err = env.authenticate.Execute(ctx, out.Tokens.AccessToken)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "token_revoked"))

	_, err = env.refresh.Execute(ctx, out.Tokens.RefreshToken)
	assert.True(t, httperr.IsBusiness(err, "invalid_refresh_token"))

	// blacklist entry lives only as long as the token would have
	ttl := env.mr.TTL("blacklist:" + out.Tokens.AccessToken)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 15*time.Minute)
}

func TestAuthenticate_RejectsRefreshToken(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	out := env.signupUser(t, "ana@example.com", "+201000000001")

	_, err := env.authenticate.Execute(context.Background(), out.Tokens.RefreshToken)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}

func TestPasswordReset(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	out := env.signupUser(t, "ana@example.com", "+201000000001")

	t.Run("unknown email is silent", func(t *testing.T) {
		tok, err := env.forgot.Execute(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Empty(t, tok)
	})

	first, err := env.forgot.Execute(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, first)
	assert.Equal(t, first, env.notifier.resets["ana@example.com"])

	second, err := env.forgot.Execute(ctx, "ANA@example.com")
	require.NoError(t, err)

	// issuing a new token invalidates the older one
	err = env.reset.Execute(ctx, first, "NewSecret@1")
	assert.True(t, httperr.IsBusiness(err, "invalid_reset_token"))

	require.NoError(t, env.reset.Execute(ctx, second, "NewSecret@1"))

	// consumed
	err = env.reset.Execute(ctx, second, "Other@123")
	assert.True(t, httperr.IsBusiness(err, "invalid_reset_token"))

	// sessions revoked, new password active
	_, err = env.refresh.Execute(ctx, out.Tokens.RefreshToken)
	assert.Error(t, err)

	_, err = env.login.Execute(ctx, "ana@example.com", "Secret@123")
	assert.Error(t, err)
	_, err = env.login.Execute(ctx, "ana@example.com", "NewSecret@1")
	assert.NoError(t, err)
}

func TestPasswordReset_Expired(t *testing.T) {
	env := setupTestEnv(t, testConfig())
	ctx := context.Background()
	out := env.signupUser(t, "ana@example.com", "+201000000001")

	expired := models.PasswordResetToken{
		Token:     "expired-token",
		UserID:    out.User.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, env.db.Create(&expired).Error)

	err := env.reset.Execute(ctx, "expired-token", "NewSecret@1")
	assert.True(t, httperr.IsBusiness(err, "invalid_reset_token"))

	err = env.reset.Execute(ctx, "never-issued", "NewSecret@1")
	assert.True(t, httperr.IsBusiness(err, "invalid_reset_token"))
}
