package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/pkg/utils"
)

// SessionCookieName is the cookie carrying the signed login token.
const SessionCookieName = "token"

// SessionAuthMiddleware authenticates requests from the session cookie
// and places the decoded claims on the request context.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "You don't have any authorisation")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}
