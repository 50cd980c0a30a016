package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftly/craftly-api/pkg/helpers"
	"github.com/craftly/craftly-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth reads the session cookie, validates its signature and expiry,
// and injects the user id into the context. Session validity is purely
// a function of the token; there is no server-side revocation.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Not authorized to access this route", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Not authorized to access this route", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
