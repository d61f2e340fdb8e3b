package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	httpapi "github.com/classikwoods/site-backend/internal/api/http"
	"github.com/classikwoods/site-backend/internal/contacts/domain"
)

type createReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// create inserts one submission with status "new". Validation failures
// never reach the store.
func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": httpapi.FieldErrors(err)})
		return
	}

	sub, err := h.store.Create(c.Request.Context(), domain.NewContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg("contact submission insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not save your message, please try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "contact": sub})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("contact list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load contact submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contacts": items})
}

type statusReq struct {
	Status domain.Status `json:"status" binding:"required"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "status is required"})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
		return
	}

	sub, err := h.store.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "contact submission not found"})
			return
		}
		log.Error().Err(err).Msg("contact status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "contact": sub})
}
