package http

import (
	"github.com/classikwoods/site-backend/internal/projects"
	"github.com/classikwoods/site-backend/internal/uploads"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	store    projects.Store
	uploader uploads.Uploader
}

func New(store projects.Store, uploader uploads.Uploader) *Handler {
	return &Handler{store: store, uploader: uploader}
}
