package handlers

import (
	"github.com/gin-gonic/gin"

	userdomain "github.com/awaleed99/bite-back0/internal/domain/user"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/httpresp"
	"github.com/awaleed99/bite-back0/internal/imaging"
	"github.com/awaleed99/bite-back0/internal/middleware"
	ucUser "github.com/awaleed99/bite-back0/internal/usecase/user"
)

// avatarFormField is the multipart field carrying the image.
const avatarFormField = "avatar"

var (
	errAvatarMissing  = httperr.ErrValidation("avatar_required", "An image file is required in the 'avatar' field")
	errAvatarOversize = httperr.ErrBadRequest("image_too_large", "Avatar must be at most 5 MB")
)

type MeHandler struct {
	getProfile     *ucUser.GetProfile
	updateProfile  *ucUser.UpdateProfile
	changePassword *ucUser.ChangePassword
	uploadAvatar   *ucUser.UploadAvatar
}

func NewMeHandler(
	getProfile *ucUser.GetProfile,
	updateProfile *ucUser.UpdateProfile,
	changePassword *ucUser.ChangePassword,
	uploadAvatar *ucUser.UploadAvatar,
) *MeHandler {
	return &MeHandler{
		getProfile:     getProfile,
		updateProfile:  updateProfile,
		changePassword: changePassword,
		uploadAvatar:   uploadAvatar,
	}
}

type UpdateProfileRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,e164"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=50,strong_password"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.getProfile.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.updateProfile.Execute(c.Request.Context(), ucUser.UpdateProfileInput{
		UserID: middleware.CurrentUserID(c),
		Changes: userdomain.ProfileChanges{
			FullName: req.FullName,
			Email:    req.Email,
			Phone:    req.Phone,
		},
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.changePassword.Execute(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, httpresp.Message{Message: "Password changed successfully"})
}

func (h *MeHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile(avatarFormField)
	if err != nil {
		httperr.Respond(c, errAvatarMissing)
		return
	}
	if fh.Size > imaging.MaxAvatarBytes {
		httperr.Respond(c, errAvatarOversize)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	u, err := h.uploadAvatar.Execute(c.Request.Context(), middleware.CurrentUserID(c), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}
