package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kioskqr/internal/session"
)

const sessionKey = "session"

// SessionMiddleware resolves the kiosk session from the X-Session-Token
// header and attaches it to the request context. Every request that
// passes through counts as a qualifying interaction and restarts the
// session's inactivity countdown.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing X-Session-Token header"})
			c.Abort()
			return
		}

		s, err := manager.Get(token)
		if err != nil {
			c.JSON(http.StatusGone, gin.H{"error": "session expired or not found"})
			c.Abort()
			return
		}

		s.Controller.Touch()
		c.Set(sessionKey, s)
		c.Next()
	}
}

// SessionFrom returns the session the middleware attached.
func SessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
