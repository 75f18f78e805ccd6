package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
	"github.com/rogerio-castellano/bowling-catalog/internal/redissvc"
)

const generationKey = "catalog:generation"

// CachedCatalogRepository is a read-through Redis cache in front of another
// CatalogRepository. Every successful write bumps a generation counter that
// is part of each key, so stale entries are never read again and simply
// expire. Redis failures are logged and the call goes to the store.
type CachedCatalogRepository struct {
	next  CatalogRepository
	cache *redissvc.RedisService
	ttl   time.Duration
	log   *slog.Logger
}

func NewCachedCatalogRepository(next CatalogRepository, cache *redissvc.RedisService, ttl time.Duration, log *slog.Logger) *CachedCatalogRepository {
	return &CachedCatalogRepository{next: next, cache: cache, ttl: ttl, log: log}
}

func (r *CachedCatalogRepository) key(ctx context.Context, op string, input any) (string, bool) {
	gen, err := r.cache.Generation(ctx, generationKey)
	if err != nil {
		r.log.Warn("cache generation unavailable", "error", err)
		return "", false
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("catalog:%d:%s:%016x", gen, op, xxhash.Sum64(raw)), true
}

func readThrough[T any](ctx context.Context, r *CachedCatalogRepository, op string, input any, load func() (T, error)) (T, error) {
	key, ok := r.key(ctx, op, input)
	if !ok {
		return load()
	}

	var cached T
	err := r.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redissvc.ErrMiss) {
		r.log.Warn("cache read failed", "key", key, "error", err)
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if err := r.cache.SetJSON(ctx, key, v, r.ttl); err != nil {
		r.log.Warn("cache write failed", "key", key, "error", err)
	}
	return v, nil
}

func (r *CachedCatalogRepository) invalidate(ctx context.Context) {
	if err := r.cache.Bump(ctx, generationKey); err != nil {
		r.log.Warn("cache invalidation failed", "error", err)
	}
}

func (r *CachedCatalogRepository) Find(ctx context.Context, d query.Descriptor) ([]models.Product, error) {
	return readThrough(ctx, r, "find", d, func() ([]models.Product, error) {
		return r.next.Find(ctx, d)
	})
}

func (r *CachedCatalogRepository) Count(ctx context.Context, filter query.Predicate) (int64, error) {
	return readThrough(ctx, r, "count", filter, func() (int64, error) {
		return r.next.Count(ctx, filter)
	})
}

func (r *CachedCatalogRepository) FindByID(ctx context.Context, id int) (models.Product, error) {
	return readThrough(ctx, r, "product", id, func() (models.Product, error) {
		return r.next.FindByID(ctx, id)
	})
}

func (r *CachedCatalogRepository) FindCategories(ctx context.Context, filter query.Predicate) ([]models.Category, error) {
	return readThrough(ctx, r, "categories", filter, func() ([]models.Category, error) {
		return r.next.FindCategories(ctx, filter)
	})
}

func (r *CachedCatalogRepository) Insert(ctx context.Context, p models.Product) error {
	if err := r.next.Insert(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedCatalogRepository) Replace(ctx context.Context, id int, p models.Product) (int64, error) {
	n, err := r.next.Replace(ctx, id, p)
	if err == nil && n > 0 {
		r.invalidate(ctx)
	}
	return n, err
}

func (r *CachedCatalogRepository) Delete(ctx context.Context, id int) (int64, error) {
	n, err := r.next.Delete(ctx, id)
	if err == nil && n > 0 {
		r.invalidate(ctx)
	}
	return n, err
}

func (r *CachedCatalogRepository) InsertCategory(ctx context.Context, c models.Category) error {
	if err := r.next.InsertCategory(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedCatalogRepository) EnsureIndexes(ctx context.Context) error {
	return r.next.EnsureIndexes(ctx)
}
