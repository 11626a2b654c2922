package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sreekarnv/mint/internal/auth"
)

const ctxUserIDKey = "uid"

// UserID returns the verified caller identity set by Auth. Empty outside
// a protected route.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

// Auth resolves "Authorization: Bearer <token>" into the caller's user id.
// Everything past this middleware trusts that identity; no handler parses
// tokens itself.
func Auth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := tm.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}
