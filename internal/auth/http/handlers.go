package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/classikwoods/site-backend/internal/auth"
)

type loginReq struct {
	IDToken string `json:"id_token"`
}

// login exchanges a provider-issued ID token for a session cookie.
func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.IDToken) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "id_token is required"})
		return
	}

	cookie, err := h.sessions.Create(c.Request.Context(), req.IDToken, h.sessionTTL)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, cookie, int(h.sessionTTL.Seconds()), "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// logout clears the session cookie. The provider-side session is left to
// expire on its own.
func (h *Handler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// session reports whether the caller currently holds a valid session.
func (h *Handler) session(c *gin.Context) {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": false})
		return
	}

	uid, err := h.sessions.Verify(c.Request.Context(), cookie)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": true, "user_id": uid})
}
