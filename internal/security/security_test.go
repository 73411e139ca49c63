package security

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/awaleed99/bite-back0/internal/config"
	"github.com/awaleed99/bite-back0/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:  "access-secret",
		JWTAccessTTL:     15 * time.Minute,
		JWTRefreshSecret: "refresh-secret",
		JWTRefreshTTL:    7 * 24 * time.Hour,
	}
}

func testUser() *models.User {
	u := &models.User{Email: "ana@example.com", Role: models.RoleUser}
	u.ID = uuid.New()
	return u
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret@123", hash)
	assert.True(t, h.Compare(hash, "Secret@123"))
	assert.False(t, h.Compare(hash, "secret@123"))
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager(testConfig())
	user := testUser()

	access, exp, err := m.Issue(user, TokenAccess)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp, 2*time.Second)

	claims, err := m.Verify(access, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, TokenAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestTokenManager_TypesAreNotInterchangeable(t *testing.T) {
	m := NewTokenManager(testConfig())
	user := testUser()

	access, _, err := m.Issue(user, TokenAccess)
	require.NoError(t, err)
	refresh, _, err := m.Issue(user, TokenRefresh)
	require.NoError(t, err)

	_, err = m.Verify(access, TokenRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.Verify(refresh, TokenAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify(refresh, TokenRefresh)
	assert.NoError(t, err)
}

func TestTokenManager_UniquePerIssue(t *testing.T) {
	m := NewTokenManager(testConfig())
	user := testUser()

	a, _, err := m.Issue(user, TokenRefresh)
	require.NoError(t, err)
	b, _, err := m.Issue(user, TokenRefresh)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager(testConfig())
	past := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return past }

	tok, _, err := m.Issue(testUser(), TokenAccess)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(tok, TokenAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager(testConfig())

	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := m.Verify(tok, TokenAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestRandom(t *testing.T) {
	otp, err := RandomDigits(6)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), otp)

	s, err := RandomUpperAlnum(6)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), s)
}
