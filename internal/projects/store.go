package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/classikwoods/site-backend/internal/projects/domain"
)

// Store is the persistence surface the HTTP and page handlers work against.
// repository.Repo implements it directly; Cached wraps it with a
// read-through list cache.
type Store interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, np domain.NewProject) (*domain.Project, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
