package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only routes used by the public site.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

// RegisterAdmin attaches the session-gated write routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PATCH("/:id/featured", h.toggleFeatured)
	rg.DELETE("/:id", h.delete)
}
