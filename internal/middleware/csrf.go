package middleware

import (
	"crypto/hmac"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_transport/internal/models"
)

// CSRFHeader carries the per-session anti-forgery token on mutating requests.
const CSRFHeader = "X-CSRF-Token"

// RequireCSRF rejects a mutating request whose anti-forgery token is absent
// or does not match the session's. Must run after RequireAuth/RequireRole.
// The check is applied to every create, edit and delete, not just deletes.
func RequireCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(SessionKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid security token. Please try again."})
			return
		}
		sess, ok := v.(*models.Session)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid security token. Please try again."})
			return
		}

		supplied := c.GetHeader(CSRFHeader)
		if supplied == "" || !hmac.Equal([]byte(supplied), []byte(sess.CSRFToken)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid security token. Please try again."})
			return
		}
		c.Next()
	}
}
