package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSession protects admin API routes. A missing or invalid session
// cookie yields 401; the page-level redirects live in guard.go.
func RequireSession(sessions Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
			c.Abort()
			return
		}

		uid, err := sessions.Verify(c.Request.Context(), cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid session"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, uid)
		c.Next()
	}
}
