package projects

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/classikwoods/site-backend/internal/projects/domain"
)

const listCacheKey = "projects:list"

// Cached is a read-through cache over a Store. Only the public listing is
// cached; every write invalidates it. Cache failures degrade to a direct
// store read.
type Cached struct {
	next Store
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCached(next Store, rdb *redis.Client, ttl time.Duration) *Cached {
	return &Cached{next: next, rdb: rdb, ttl: ttl}
}

func (c *Cached) List(ctx context.Context) ([]domain.Project, error) {
	raw, err := c.rdb.Get(ctx, listCacheKey).Bytes()
	if err == nil {
		var out []domain.Project
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
	} else if err != redis.Nil {
		log.Warn().Err(err).Msg("project list cache read failed")
	}

	out, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, listCacheKey, raw, c.ttl).Err(); err != nil {
			log.Warn().Err(err).Msg("project list cache write failed")
		}
	}
	return out, nil
}

func (c *Cached) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return c.next.Get(ctx, id)
}

func (c *Cached) Create(ctx context.Context, np domain.NewProject) (*domain.Project, error) {
	p, err := c.next.Create(ctx, np)
	if err == nil {
		c.invalidate(ctx)
	}
	return p, err
}

func (c *Cached) ToggleFeatured(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	p, err := c.next.ToggleFeatured(ctx, id)
	if err == nil {
		c.invalidate(ctx)
	}
	return p, err
}

func (c *Cached) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := c.next.Delete(ctx, id)
	if err == nil && ok {
		c.invalidate(ctx)
	}
	return ok, err
}

func (c *Cached) invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, listCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("project list cache invalidation failed")
	}
}
