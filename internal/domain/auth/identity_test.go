package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeIdentifier("  Ana@Example.COM "))
	assert.Equal(t, "+201234567890", NormalizeIdentifier("+201234567890"))
	assert.Equal(t, "ana@example.com", NormalizeEmail("ANA@example.com"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "otp:u1", OTPKey("u1"))
	assert.Equal(t, "otp_attempts:u1", OTPAttemptsKey("u1"))
	assert.Equal(t, "otp_cooldown:u1", OTPCooldownKey("u1"))
	assert.Equal(t, "blacklist:t", BlacklistKey("t"))
}
