package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the visitor-facing route.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("", h.create)
}

// RegisterAdmin attaches the session-gated routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.PATCH("/:id/status", h.updateStatus)
}
