package user

import "github.com/awaleed99/bite-back0/internal/httperr"

var (
	errUserNotFound = httperr.ErrNotFound("user_not_found", "User not found")
	errEmailInUse   = httperr.ErrConflict("email_in_use", "Email already in use")
	errPhoneInUse   = httperr.ErrConflict("phone_in_use", "Phone number already in use")

	errWrongPassword = httperr.ErrBadRequest("current_password_incorrect", "Current password is incorrect")

	errAvatarFormat      = httperr.ErrBadRequest("invalid_image", "Avatar must be a JPEG, PNG or WebP image")
	errAvatarTooLarge    = httperr.ErrBadRequest("image_too_large", "Avatar must be at most 5 MB")
	errAvatarUnavailable = httperr.ErrBadRequest("avatar_upload_unavailable", "Avatar uploads are not configured")
)
