package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/classikwoods/site-backend/internal/projects/domain"
	"github.com/classikwoods/site-backend/internal/uploads"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("project list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	p, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		log.Error().Err(err).Msg("project get failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// create handles the admin multipart form: validate fields, upload the
// image, and only insert the row once the upload has succeeded. An upload
// failure must not leave a project row behind.
func (h *Handler) create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	projectType := strings.TrimSpace(c.PostForm("project_type"))
	materials := strings.TrimSpace(c.PostForm("materials"))
	clientStory := strings.TrimSpace(c.PostForm("client_story"))

	errs := make(map[string]string)
	if title == "" {
		errs["title"] = "title is required"
	}
	if description == "" {
		errs["description"] = "description is required"
	}
	if !domain.ValidProjectType(projectType) {
		errs["project_type"] = "select a project type from the list"
	}

	file, err := c.FormFile("image")
	if err != nil {
		errs["image"] = "image file is required"
	} else if file.Size > uploads.MaxImageSize {
		errs["image"] = "image must be 5MB or smaller"
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": errs})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": gin.H{"image": "could not read image file"}})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if !uploads.ValidImageType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": gin.H{"image": "file must be an image"}})
		return
	}

	imageURL, err := h.uploader.Upload(c.Request.Context(), uploads.NewImageFilename(file.Filename), contentType, src, file.Size)
	if err != nil {
		log.Error().Err(err).Msg("project image upload failed")
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "image upload failed, project was not created"})
		return
	}

	p, err := h.store.Create(c.Request.Context(), domain.NewProject{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		ProjectType: projectType,
		Materials:   materials,
		ClientStory: clientStory,
	})
	if err != nil {
		// The uploaded image is now unreferenced; it is not cleaned up.
		log.Error().Err(err).Str("image_url", imageURL).Msg("project insert failed after upload")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) toggleFeatured(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	p, err := h.store.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		log.Error().Err(err).Msg("featured toggle failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	ok, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("project delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not delete project"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
