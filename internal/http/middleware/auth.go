// README: Firebase bearer-token auth middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh-R2/smart-travel/internal/infra"
)

const uidKey = "auth_uid"

// Auth verifies the Authorization bearer token and stashes the caller UID in
// the context. Requests without a valid token are rejected with 401.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "expected bearer token"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(uidKey, token.UID)
		c.Next()
	}
}

// CallerUID returns the authenticated caller's UID, or "" outside Auth.
func CallerUID(c *gin.Context) string {
	return c.GetString(uidKey)
}
