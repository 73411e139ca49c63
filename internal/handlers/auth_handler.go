package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/httpresp"
	"github.com/awaleed99/bite-back0/internal/middleware"
	"github.com/awaleed99/bite-back0/internal/models"
	ucAuth "github.com/awaleed99/bite-back0/internal/usecase/auth"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	signup      *ucAuth.Signup
	login       *ucAuth.Login
	verifyPhone *ucAuth.VerifyPhone
	resendOTP   *ucAuth.ResendOTP
	forgot      *ucAuth.ForgotPassword
	reset       *ucAuth.ResetPassword
	refresh     *ucAuth.RefreshToken
	logout      *ucAuth.Logout

	// exposeOTP echoes codes in responses; never set in production.
	exposeOTP bool
}

func NewAuthHandler(
	signup *ucAuth.Signup,
	login *ucAuth.Login,
	verifyPhone *ucAuth.VerifyPhone,
	resendOTP *ucAuth.ResendOTP,
	forgot *ucAuth.ForgotPassword,
	reset *ucAuth.ResetPassword,
	refresh *ucAuth.RefreshToken,
	logout *ucAuth.Logout,
	exposeOTP bool,
) *AuthHandler {
	return &AuthHandler{
		signup:      signup,
		login:       login,
		verifyPhone: verifyPhone,
		resendOTP:   resendOTP,
		forgot:      forgot,
		reset:       reset,
		refresh:     refresh,
		logout:      logout,
		exposeOTP:   exposeOTP,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type SignupRequest struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=50,strong_password"`
	Phone    string `json:"phone" binding:"required,e164"`
}

type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

type VerifyPhoneRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

type ResendOTPRequest struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=50,strong_password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type SessionResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	Message      string       `json:"message,omitempty"`
	OTP          string       `json:"otp,omitempty"`
}

type OTPResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// ======================================================
// SIGNUP / LOGIN
// ======================================================

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.signup.Execute(c.Request.Context(), ucAuth.SignupInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, SessionResponse{
		User:         out.User,
		AccessToken:  out.Tokens.AccessToken,
		RefreshToken: out.Tokens.RefreshToken,
		Message:      "Signup successful. Please verify your phone number.",
		OTP:          out.OTP,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.EmailOrPhone, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, SessionResponse{
		User:         out.User,
		AccessToken:  out.Tokens.AccessToken,
		RefreshToken: out.Tokens.RefreshToken,
	})
}

// ======================================================
// OTP
// ======================================================

func (h *AuthHandler) VerifyPhone(c *gin.Context) {
	var req VerifyPhoneRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.verifyPhone.Execute(c.Request.Context(), middleware.CurrentUserID(c), req.Code); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, httpresp.Message{Message: "Phone verified successfully"})
}

func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if !bindJSON(c, &req) {
		return
	}

	code, err := h.resendOTP.Execute(c.Request.Context(), req.EmailOrPhone)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp := OTPResponse{Message: "OTP sent successfully"}
	if h.exposeOTP {
		resp.OTP = code
	}
	httpresp.OK(c, resp)
}

// ======================================================
// PASSWORD RESET
// ======================================================

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.forgot.Execute(c.Request.Context(), req.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ForgotPasswordResponse{
		Message:    ucAuth.ForgotPasswordMessage,
		ResetToken: token,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.reset.Execute(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, httpresp.Message{Message: "Password reset successfully"})
}

// ======================================================
// SESSION
// ======================================================

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.refresh.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.logout.Execute(c.Request.Context(), middleware.CurrentUserID(c), middleware.AccessToken(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, httpresp.Message{Message: "Logged out successfully"})
}
