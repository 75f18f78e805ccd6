package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

func seedProducts(t *testing.T, r CatalogRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, r.Insert(context.Background(), models.Product{
			ID:          i,
			Name:        fmt.Sprintf("Ball %02d", i),
			Price:       float64(100 + i),
			IsAvailable: true,
			CategoryID:  1 + i%2,
		}))
	}
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestInMemoryFindSecondPage(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	seedProducts(t, r, 25)

	q := query.NewProductQuery()
	q.SetPage(2)
	q.SetSize(10)
	d, err := query.Compile(q)
	require.NoError(t, err)

	got, err := r.Find(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, ids(got))
}

func TestInMemoryFindPastLastPageIsEmpty(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	seedProducts(t, r, 5)

	got, err := r.Find(context.Background(), query.Descriptor{
		Filter: query.All(),
		Sort:   query.DefaultSort,
		Window: query.Window{Offset: 50, Limit: 10},
	})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInMemoryFindDescendingWithTieBreak(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	ctx := context.Background()
	require.NoError(t, r.Insert(ctx, models.Product{ID: 3, Name: "C", Price: 150, IsAvailable: true}))
	require.NoError(t, r.Insert(ctx, models.Product{ID: 1, Name: "A", Price: 150, IsAvailable: true}))
	require.NoError(t, r.Insert(ctx, models.Product{ID: 2, Name: "B", Price: 200, IsAvailable: true}))

	got, err := r.Find(ctx, query.Descriptor{
		Filter: query.All(),
		Sort:   query.Sort{Field: query.FieldPrice, Descending: true},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, ids(got))
}

func TestInMemoryCount(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	seedProducts(t, r, 7)

	n, err := r.Count(context.Background(), query.Gte(query.FieldPrice, 105.0))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestInMemoryInsertDuplicate(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	ctx := context.Background()
	require.NoError(t, r.Insert(ctx, models.Product{ID: 1, Name: "Phaze II"}))

	assert.ErrorIs(t, r.Insert(ctx, models.Product{ID: 1, Name: "Other"}), ErrDuplicatedValueUnique)
	assert.ErrorIs(t, r.Insert(ctx, models.Product{ID: 2, Name: "Phaze II"}), ErrDuplicatedValueUnique)
}

func TestInMemoryReplaceAndDelete(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	ctx := context.Background()
	seedProducts(t, r, 2)

	n, err := r.Replace(ctx, 1, models.Product{ID: 99, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	p, err := r.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Name)

	_, err = r.Replace(ctx, 1, models.Product{Name: "Ball 02"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	n, err = r.Replace(ctx, 42, models.Product{Name: "Ghost"})
	require.NoError(t, err)
	assert.Zero(t, n)

	// a missing id wins over a name collision
	n, err = r.Replace(ctx, 42, models.Product{Name: "Ball 02"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = r.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = r.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = r.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestInMemoryFindCategoriesOrderedByID(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	ctx := context.Background()
	require.NoError(t, r.InsertCategory(ctx, models.Category{ID: 3, ManufacturerName: "Storm"}))
	require.NoError(t, r.InsertCategory(ctx, models.Category{ID: 1, ManufacturerName: "Brunswick"}))
	require.NoError(t, r.InsertCategory(ctx, models.Category{ID: 2, ManufacturerName: "Roto Grip"}))

	got, err := r.FindCategories(ctx, query.ManufacturerFilter("r"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[2].ID)

	got, err = r.FindCategories(ctx, query.ManufacturerFilter("STORM"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Storm", got[0].ManufacturerName)

	assert.ErrorIs(t, r.InsertCategory(ctx, models.Category{ID: 9, ManufacturerName: "Storm"}), ErrDuplicatedValueUnique)
}
