package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/classikwoods/site-backend/internal/contacts/domain"
)

// Store is the persistence surface the handlers need.
type Store interface {
	Create(ctx context.Context, nc domain.NewContactSubmission) (*domain.ContactSubmission, error)
	List(ctx context.Context) ([]domain.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.ContactSubmission, error)
}

// Handler bundles the dependencies for contact HTTP endpoints.
type Handler struct {
	store Store
}

func New(store Store) *Handler {
	return &Handler{store: store}
}
