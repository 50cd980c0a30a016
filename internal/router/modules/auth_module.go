package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/craftly/craftly-api/internal/container"
	handlers "github.com/craftly/craftly-api/internal/interface/http"
	"github.com/craftly/craftly-api/internal/interface/middleware"
	"github.com/craftly/craftly-api/pkg/helpers"
)

// AuthModule wires the auth HTTP surface:
// Public:    POST /api/auth/signup, /login, /logout,
//            /password/forgot, /password/reset/:resetToken
// Protected: GET /api/auth/profile
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	signupLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath())
	forgotLimiter := middleware.RateLimit(rdb, 5, time.Minute, middleware.KeyByIPAndPath())
	resetLimiter := middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByIPAndPath())

	auth := rg.Group("/auth")
	auth.POST("/signup", signupLimiter, m.Handler.Signup)
	auth.POST("/login", loginLimiter, m.Handler.Login)
	auth.POST("/logout", m.Handler.Logout)
	auth.POST("/password/forgot", forgotLimiter, m.Handler.ForgotPassword)
	auth.POST("/password/reset/:resetToken", resetLimiter, m.Handler.ResetPassword)

	protected := auth.Group("/")
	protected.Use(middleware.Auth(m.JWT))
	{
		protected.GET("/profile", m.Handler.Profile)
	}
}
