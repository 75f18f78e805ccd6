package repo

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
	"github.com/rogerio-castellano/bowling-catalog/internal/redissvc"
)

// unreachableCache points at a closed port so every Redis call fails fast.
func unreachableCache(t *testing.T) *redissvc.RedisService {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return redissvc.NewRedisService(rdb)
}

func TestCachedCatalogFallsThroughWhenRedisIsDown(t *testing.T) {
	store := NewInMemoryCatalogRepository()
	r := NewCachedCatalogRepository(store, unreachableCache(t), time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, r.InsertCategory(ctx, models.Category{ID: 1, ManufacturerName: "Storm"}))
	require.NoError(t, r.Insert(ctx, models.Product{ID: 1, Name: "Phaze II", IsAvailable: true, CategoryID: 1}))
	require.NoError(t, r.Insert(ctx, models.Product{ID: 2, Name: "IQ Tour", IsAvailable: true, CategoryID: 1}))

	got, err := r.Find(ctx, query.Descriptor{Filter: query.All(), Sort: query.DefaultSort})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(got))

	n, err := r.Count(ctx, query.All())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	categories, err := r.FindCategories(ctx, query.ManufacturerFilter("storm"))
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	deleted, err := r.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = r.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCachedCatalogPropagatesStoreErrors(t *testing.T) {
	r := NewCachedCatalogRepository(NewInMemoryCatalogRepository(), unreachableCache(t), time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, models.Product{ID: 1, Name: "Hy-Road"}))
	assert.ErrorIs(t, r.Insert(ctx, models.Product{ID: 2, Name: "Hy-Road"}), ErrDuplicatedValueUnique)
}
