package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vidtube/internal/pkg/jwt"
	"vidtube/internal/pkg/response"
)

// RequireAuth validates the access token from the session cookie or, failing
// that, a Bearer header, and puts the claims into the request context.
func RequireAuth(jwtSvc *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			abortUnauthorized(c, "Unauthorized request")
			return
		}

		claims, err := jwtSvc.ValidateAccessToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid access token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}

	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Failure(c, http.StatusUnauthorized, message)
	c.Abort()
}
