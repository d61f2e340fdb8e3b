package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	httpapi "github.com/classikwoods/site-backend/internal/api/http"
	"github.com/classikwoods/site-backend/internal/bookings/domain"
	projdomain "github.com/classikwoods/site-backend/internal/projects/domain"
)

const dateLayout = "2006-01-02"

type createReq struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	ProjectType   string `json:"project_type" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	Budget        string `json:"budget" binding:"required"`
	Message       string `json:"message" binding:"required"`
}

// validate applies the enum and date rules that binding tags cannot express.
func (r createReq) validate() (time.Time, map[string]string) {
	errs := make(map[string]string)

	if !projdomain.ValidProjectType(r.ProjectType) {
		errs["project_type"] = "select a project type from the list"
	}
	if !domain.ValidBudget(r.Budget) {
		errs["budget"] = "select a budget range from the list"
	}

	date, err := time.Parse(dateLayout, r.PreferredDate)
	if err != nil {
		errs["preferred_date"] = "preferred_date must be a YYYY-MM-DD date"
	} else {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if date.Before(today) {
			errs["preferred_date"] = "preferred date cannot be in the past"
		}
	}

	if len(errs) > 0 {
		return time.Time{}, errs
	}
	return date, nil
}

// create inserts one submission with status "pending". Validation failures
// never reach the store.
func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": httpapi.FieldErrors(err)})
		return
	}

	date, errs := req.validate()
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": errs})
		return
	}

	sub, err := h.store.Create(c.Request.Context(), domain.NewBookingSubmission{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ProjectType:   req.ProjectType,
		PreferredDate: date,
		Budget:        req.Budget,
		Message:       req.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg("booking submission insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not save your request, please try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "booking": sub})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("booking list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load booking submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bookings": items})
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
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "booking submission not found"})
			return
		}
		log.Error().Err(err).Msg("booking status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "booking": sub})
}
