package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Guard holds the stateless per-request checks for the web routes. It keeps
// no memory between requests beyond what the session cookie itself carries.
type Guard struct {
	sessions Sessions
}

func NewGuard(sessions Sessions) *Guard {
	return &Guard{sessions: sessions}
}

func (g *Guard) hasSession(c *gin.Context) (string, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	uid, err := g.sessions.Verify(c.Request.Context(), cookie)
	if err != nil {
		return "", false
	}
	return uid, true
}

// RequireAdmin redirects unauthenticated requests for admin pages to the
// login page, preserving the originally requested path as a return target.
func (g *Guard) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := g.hasSession(c)
		if !ok {
			target := "/login?redirectTo=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		c.Set(CtxUserID, uid)
		c.Next()
	}
}

// RedirectAuthenticated sends an already signed-in user visiting the login
// page back to the admin root.
func (g *Guard) RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := g.hasSession(c); ok {
			c.Redirect(http.StatusSeeOther, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
