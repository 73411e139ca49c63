package auth

import "strings"

// NormalizeEmail is the canonical stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeIdentifier prepares an email-or-phone login identifier. Emails are
// lowercased, phones are kept as typed.
func NormalizeIdentifier(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		return strings.ToLower(identifier)
	}
	return identifier
}

// Cache key namespaces for short-lived auth state.
func OTPKey(userID string) string         { return "otp:" + userID }
func OTPAttemptsKey(userID string) string { return "otp_attempts:" + userID }
func OTPCooldownKey(userID string) string { return "otp_cooldown:" + userID }
func BlacklistKey(token string) string    { return "blacklist:" + token }
