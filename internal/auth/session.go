package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	// ErrSessionExpired means the token was rejected by the identity
	// provider. Surfaced as 401 so the caller re-authenticates.
	ErrSessionExpired = errors.New("session expired or invalid")
)

// Session is the verified identity passed explicitly into every service
// operation. The lifecycle layer never reaches for a global auth context.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// Verifier turns an access token into a Session. The production
// implementation asks Supabase; tests plug in a stub.
type Verifier interface {
	Verify(ctx context.Context, accessToken string) (*Session, error)
}

const sessionKey = "session"

// Middleware extracts the bearer token, verifies it, and stores the session
// in the gin context for handlers to pick up.
func Middleware(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		sess, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired, please sign in again"})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// FromContext returns the session placed by Middleware, or nil on
// unauthenticated routes.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return nil
}
