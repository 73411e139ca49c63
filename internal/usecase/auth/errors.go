package auth

import "github.com/awaleed99/bite-back0/internal/httperr"

var (
	errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid credentials")
	errInvalidRefresh     = httperr.ErrUnauthorized("invalid_refresh_token", "Invalid or expired refresh token")
	errInvalidAccess      = httperr.ErrUnauthorized("invalid_token", "Invalid or expired token")
	errTokenRevoked       = httperr.ErrUnauthorized("token_revoked", "Token has been revoked")

	errEmailTaken = httperr.ErrConflict("email_already_registered", "Email already registered")
	errPhoneTaken = httperr.ErrConflict("phone_already_registered", "Phone number already registered")

	errTooManyOTPAttempts = httperr.ErrBadRequest("otp_too_many_attempts", "Too many failed attempts. Please request a new OTP.")
	errOTPExpired         = httperr.ErrBadRequest("otp_expired", "OTP expired or not found. Please request a new one.")
	errOTPInvalid         = httperr.ErrBadRequest("otp_invalid", "Invalid OTP code")

	errInvalidResetToken = httperr.ErrBadRequest("invalid_reset_token", "Invalid or expired reset token")

	errUserNotFound = httperr.ErrNotFound("user_not_found", "User not found")
)
