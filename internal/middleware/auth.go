package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campus_transport/internal/models"
	"campus_transport/internal/session"
)

// Context keys set by the guard for downstream handlers.
const (
	IdentityKey = "identity"
	SessionKey  = "session"
)

// BearerToken extracts the bearer token from the Authorization header, or
// returns "" when the header is absent or malformed.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// resolveIdentity resolves the bearer token to a live session and stores it
// in the request context. It aborts with 401 on failure and never advances
// the handler chain itself, so callers can run further checks before the
// protected handler executes.
func resolveIdentity(c *gin.Context, sessions *session.Manager) (models.Identity, bool) {
	token := BearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return models.Identity{}, false
	}

	sess, err := sessions.Resolve(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
		return models.Identity{}, false
	}

	identity := models.Identity{UserID: sess.UserID, Role: sess.Role, Name: sess.Name}
	c.Set(SessionKey, sess)
	c.Set(IdentityKey, identity)
	return identity, true
}

// RequireAuth ensures a live session is present and stores the resolved
// identity in the request context.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := resolveIdentity(c, sessions); !ok {
			return
		}
		c.Next()
	}
}

// RequireRole ensures the session's role matches the single role the route
// declares. There is no escalation path: a mismatched role is denied outright
// before any data access.
func RequireRole(sessions *session.Manager, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := resolveIdentity(c, sessions)
		if !ok {
			return
		}
		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// Identity returns the identity stored by RequireAuth. Zero value when the
// guard has not run.
func Identity(c *gin.Context) models.Identity {
	if v, ok := c.Get(IdentityKey); ok {
		if identity, ok := v.(models.Identity); ok {
			return identity
		}
	}
	return models.Identity{}
}
