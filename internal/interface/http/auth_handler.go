package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/craftly/craftly-api/internal/application"
	"github.com/craftly/craftly-api/pkg/helpers"
	"github.com/craftly/craftly-api/pkg/response"
	"github.com/craftly/craftly-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Password        string `json:"password" binding:"required,pwd"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide all fields", validation.ToDetails(err))
		return
	}

	u, sess, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "User already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	response.Success(c, http.StatusOK, "", gin.H{"token": sess.Token, "user": u})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide all fields", validation.ToDetails(err))
		return
	}

	u, sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "Invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	response.Success(c, http.StatusOK, "", gin.H{"token": sess.Token, "user": u})
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// ForgotPassword POST /api/auth/password/forgot
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide an email", validation.ToDetails(err))
		return
	}

	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, application.ErrMailSend):
			response.Error(c, http.StatusInternalServerError, "Failed to send reset email", nil)
		default:
			h.Logger.WithError(err).Error("forgot password failed")
			response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Password reset email sent to "+req.Email, nil)
}

// ResetPassword POST /api/auth/password/reset/:resetToken
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("resetToken")

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide all fields", validation.ToDetails(err))
		return
	}

	u, sess, err := h.Svc.ResetPassword(c.Request.Context(), token, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidOrExpiredToken):
			response.Error(c, http.StatusBadRequest, "Password reset token is invalid or expired", nil)
		case errors.Is(err, application.ErrPasswordMismatch):
			response.Error(c, http.StatusBadRequest, "Password and confirm password do not match", nil)
		default:
			h.Logger.WithError(err).Error("reset password failed")
			response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		}
		return
	}

	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	response.Success(c, http.StatusOK, "", gin.H{"user": u})
}

// Profile GET /api/auth/profile (auth required)
func (h *AuthHandler) Profile(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"user": u})
}
