package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunarly/cmd/api/auth"
)

const ctxKeyUID = "uid"

// RequireAuth verifies the Bearer token and stores the caller uid on the
// gin context. Requests without a verified identity never reach a
// handler.
func RequireAuth(manager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		uid, err := manager.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ctxKeyUID, uid)
		c.Next()
	}
}

// CallerUID returns the authenticated uid set by RequireAuth, or "".
func CallerUID(c *gin.Context) string {
	uid, _ := c.Get(ctxKeyUID)
	s, _ := uid.(string)
	return s
}
