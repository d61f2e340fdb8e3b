package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSessions struct {
	valid map[string]string // cookie -> uid
}

func (f *fakeSessions) Create(_ context.Context, idToken string, _ time.Duration) (string, error) {
	if idToken == "" {
		return "", ErrNoSession
	}
	return "cookie-for-" + idToken, nil
}

func (f *fakeSessions) Verify(_ context.Context, cookie string) (string, error) {
	if uid, ok := f.valid[cookie]; ok {
		return uid, nil
	}
	return "", ErrNoSession
}

func newGuardRouter(sessions Sessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	guard := NewGuard(sessions)

	admin := r.Group("/admin", guard.RequireAdmin())
	admin.GET("/upload", func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})

	login := r.Group("/login", guard.RedirectAuthenticated())
	login.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "login page")
	})

	return r
}

func TestRequireAdmin(t *testing.T) {
	sessions := &fakeSessions{valid: map[string]string{"good": "uid-1"}}
	r := newGuardRouter(sessions)

	t.Run("no cookie redirects to login with return target", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/upload", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login?redirectTo=%2Fadmin%2Fupload", rr.Header().Get("Location"))
	})

	t.Run("invalid cookie redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/upload", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale"})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
	})

	t.Run("valid cookie reaches the handler with the user id set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/upload", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "good"})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "uid-1", rr.Body.String())
	})
}

func TestRedirectAuthenticated(t *testing.T) {
	sessions := &fakeSessions{valid: map[string]string{"good": "uid-1"}}
	r := newGuardRouter(sessions)

	t.Run("signed-in visitor bounces to the dashboard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "good"})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/admin", rr.Header().Get("Location"))
	})

	t.Run("anonymous visitor sees the login page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRequireSession(t *testing.T) {
	sessions := &fakeSessions{valid: map[string]string{"good": "uid-1"}}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", RequireSession(sessions))
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": UserID(c)})
	})

	t.Run("missing cookie is a 401, not a redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Header().Get("Location"))
	})

	t.Run("valid cookie passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "good"})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "uid-1")
	})
}
