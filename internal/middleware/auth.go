package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bigmanpc/api/internal/security"
)

const claimsContextKey = "session_claims"

// TokenVerifier is satisfied by service.AuthService.
type TokenVerifier interface {
	Verify(token string) (*security.SessionClaims, error)
}

// Auth guards the admin-only endpoints. Tokens are stateless, so this is
// a pure verification step: no user row is loaded here.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// SessionClaims pulls the verified claims set by Auth, if any.
func SessionClaims(c *gin.Context) (*security.SessionClaims, bool) {
	val, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*security.SessionClaims)
	return claims, ok
}
