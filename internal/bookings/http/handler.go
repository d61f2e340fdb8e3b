package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/classikwoods/site-backend/internal/bookings/domain"
)

// Store is the persistence surface the handlers need.
type Store interface {
	Create(ctx context.Context, nb domain.NewBookingSubmission) (*domain.BookingSubmission, error)
	List(ctx context.Context) ([]domain.BookingSubmission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.BookingSubmission, error)
}

// Handler bundles the dependencies for booking HTTP endpoints.
type Handler struct {
	store Store
}

func New(store Store) *Handler {
	return &Handler{store: store}
}
