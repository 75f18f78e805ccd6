package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
	"github.com/rogerio-castellano/bowling-catalog/internal/repo"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunSeedsEmptyStoreOnce(t *testing.T) {
	store := repo.NewInMemoryCatalogRepository()
	ctx := context.Background()

	res, err := Run(ctx, store, discard)
	require.NoError(t, err)
	assert.Equal(t, Result{Categories: 8, Products: 48}, res)

	res, err = Run(ctx, store, discard)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	n, err := store.Count(ctx, query.All())
	require.NoError(t, err)
	assert.Equal(t, int64(48), n)
}

func TestRunKeepsExistingProducts(t *testing.T) {
	store := repo.NewInMemoryCatalogRepository()
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, models.Product{ID: 500, Name: "Custom"}))

	res, err := Run(ctx, store, discard)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Categories)
	assert.Zero(t, res.Products)
}

func TestStockDataIsConsistent(t *testing.T) {
	categoryIDs := map[int]bool{}
	for _, c := range Categories {
		categoryIDs[c.ID] = true
	}

	names := map[string]bool{}
	ids := map[int]bool{}
	for _, p := range Products {
		assert.True(t, categoryIDs[p.CategoryID], "product %d references unknown category %d", p.ID, p.CategoryID)
		assert.False(t, names[p.Name], "duplicate product name %q", p.Name)
		assert.False(t, ids[p.ID], "duplicate product id %d", p.ID)
		names[p.Name] = true
		ids[p.ID] = true
	}
}
