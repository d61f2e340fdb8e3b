package projects

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classikwoods/site-backend/internal/projects/domain"
)

type countingStore struct {
	items     []domain.Project
	listCalls int
}

func (s *countingStore) List(_ context.Context) ([]domain.Project, error) {
	s.listCalls++
	return s.items, nil
}

func (s *countingStore) Get(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	return nil, domain.ErrNotFound
}

func (s *countingStore) Create(_ context.Context, np domain.NewProject) (*domain.Project, error) {
	p := domain.Project{ID: np.ID, Title: np.Title}
	s.items = append(s.items, p)
	return &p, nil
}

func (s *countingStore) ToggleFeatured(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	return &domain.Project{ID: id, Featured: true}, nil
}

func (s *countingStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	return true, nil
}

func newCacheFixture(t *testing.T) (*countingStore, *Cached, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := &countingStore{items: []domain.Project{
		{ID: uuid.New(), Title: "Oak bookcase"},
	}}
	return store, NewCached(store, rdb, time.Minute), mr
}

func TestCachedList(t *testing.T) {
	ctx := context.Background()

	t.Run("second read is served from the cache", func(t *testing.T) {
		store, cached, _ := newCacheFixture(t)

		first, err := cached.List(ctx)
		require.NoError(t, err)
		second, err := cached.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, store.listCalls)
	})

	t.Run("create invalidates the listing", func(t *testing.T) {
		store, cached, mr := newCacheFixture(t)

		_, err := cached.List(ctx)
		require.NoError(t, err)
		assert.True(t, mr.Exists("projects:list"))

		_, err = cached.Create(ctx, domain.NewProject{ID: uuid.New(), Title: "Cedar chest"})
		require.NoError(t, err)
		assert.False(t, mr.Exists("projects:list"))

		items, err := cached.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, 2, store.listCalls)
	})

	t.Run("featured toggle invalidates the listing", func(t *testing.T) {
		_, cached, mr := newCacheFixture(t)

		_, err := cached.List(ctx)
		require.NoError(t, err)

		_, err = cached.ToggleFeatured(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, mr.Exists("projects:list"))
	})

	t.Run("delete invalidates the listing", func(t *testing.T) {
		_, cached, mr := newCacheFixture(t)

		_, err := cached.List(ctx)
		require.NoError(t, err)

		_, err = cached.Delete(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, mr.Exists("projects:list"))
	})

	t.Run("redis outage falls back to the store", func(t *testing.T) {
		store, cached, mr := newCacheFixture(t)
		mr.Close()

		items, err := cached.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 1, store.listCalls)
	})
}
