package web

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classikwoods/site-backend/internal/auth"
)

// Register attaches the page routes. The guard's checks run per request;
// everything under /admin requires a session, and /login bounces already
// signed-in admins back to the dashboard.
func (h *Handler) Register(r *gin.Engine, guard *auth.Guard) {
	r.SetHTMLTemplate(Templates())

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", h.home)
	r.GET("/projects/:id", h.projectDetail)
	r.GET("/about", h.about)
	r.POST("/about", h.submitBooking)
	r.GET("/contact", h.contactRedirect)
	r.GET("/booking", h.bookingRedirect)

	login := r.Group("/login")
	login.Use(guard.RedirectAuthenticated())
	login.GET("", h.loginPage)
	login.POST("", h.submitLogin)
	r.POST("/logout", h.submitLogout)

	admin := r.Group("/admin")
	admin.Use(guard.RequireAdmin())
	admin.GET("", h.dashboard)
	admin.GET("/upload", h.uploadPage)
	admin.POST("/projects", h.createProject)
	admin.POST("/projects/:id/featured", h.toggleFeatured)
	admin.POST("/projects/:id/delete", h.deleteProject)
	admin.POST("/contacts/:id/status", h.updateContactStatus)
	admin.POST("/bookings/:id/status", h.updateBookingStatus)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not_found.tmpl", nil)
	})
}
