package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/bowling-catalog/internal/catalog"
	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
	"github.com/rogerio-castellano/bowling-catalog/internal/repo"
)

func newService(t *testing.T) (*catalog.Service, *repo.InMemoryCatalogRepository) {
	t.Helper()
	store := repo.NewInMemoryCatalogRepository()
	ctx := context.Background()

	require.NoError(t, store.InsertCategory(ctx, models.Category{ID: 1, ManufacturerName: "Storm"}))
	require.NoError(t, store.InsertCategory(ctx, models.Category{ID: 2, ManufacturerName: "Roto Grip"}))
	require.NoError(t, store.InsertCategory(ctx, models.Category{ID: 3, ManufacturerName: "Track"}))

	products := []models.Product{
		{ID: 1, Name: "Phaze II", Colour: "Teal / Black", LaneConditions: "Medium-Heavy", Price: 189.99, IsAvailable: true, CategoryID: 1},
		{ID: 2, Name: "IQ Tour", Colour: "Sky / Blue / Orange", LaneConditions: "Medium", Price: 159.99, IsAvailable: true, CategoryID: 1},
		{ID: 3, Name: "Hustle Ink", Colour: "Pink / Purple", LaneConditions: "Dry", Price: 99.99, IsAvailable: true, CategoryID: 2},
		{ID: 4, Name: "Idol Helios", Colour: "Blue Pearl", LaneConditions: "Medium", Price: 199.99, IsAvailable: false, CategoryID: 2},
	}
	for _, p := range products {
		require.NoError(t, store.Insert(ctx, p))
	}
	return catalog.NewService(store), store
}

func productIDs(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestListProductsExcludesUnavailable(t *testing.T) {
	svc, _ := newService(t)

	q := query.NewProductQuery()
	q.SearchTerm = "blue"
	products, total, err := svc.ListProducts(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, []int{2}, productIDs(products))
	assert.Equal(t, int64(1), total)
}

func TestListProductsTotalIgnoresWindow(t *testing.T) {
	svc, _ := newService(t)

	q := query.NewProductQuery()
	q.SetSize(2)
	q.SetPage(2)
	products, total, err := svc.ListProducts(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, []int{3}, productIDs(products))
	assert.Equal(t, int64(3), total)
}

func TestListProductsRejectsBadParameters(t *testing.T) {
	svc, _ := newService(t)

	q := query.NewProductQuery()
	q.SetSortBy("password")
	_, _, err := svc.ListProducts(context.Background(), q)
	assert.Equal(t, catalog.KindBadRequest, catalog.KindOf(err))

	q = query.NewProductQuery()
	q.SetPage(0)
	_, _, err = svc.ListProducts(context.Background(), q)
	assert.Equal(t, catalog.KindBadRequest, catalog.KindOf(err))
}

func TestGetProduct(t *testing.T) {
	svc, _ := newService(t)

	p, err := svc.GetProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Hustle Ink", p.Name)

	_, err = svc.GetProduct(context.Background(), 404)
	assert.Equal(t, catalog.KindNotFound, catalog.KindOf(err))
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
}

func TestProductsByManufacturer(t *testing.T) {
	svc, _ := newService(t)

	products, err := svc.ProductsByManufacturer(context.Background(), "rOTO")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, productIDs(products))

	products, err = svc.ProductsByManufacturer(context.Background(), "Track")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductsByManufacturerNoMatch(t *testing.T) {
	svc, _ := newService(t)

	products, err := svc.ProductsByManufacturer(context.Background(), "Nonexistent")
	assert.Nil(t, products)
	assert.Equal(t, catalog.KindNoMatch, catalog.KindOf(err))
	assert.Equal(t, "No categories found for manufacturer 'Nonexistent'.", catalog.PublicMessage(err))
}

func TestProductsByLaneConditions(t *testing.T) {
	svc, _ := newService(t)

	products, err := svc.ProductsByLaneConditions(context.Background(), " medium , DRY ")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, productIDs(products))

	products, err = svc.ProductsByLaneConditions(context.Background(), "wet")
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = svc.ProductsByLaneConditions(context.Background(), "")
	assert.Equal(t, catalog.KindBadRequest, catalog.KindOf(err))
}

func TestCreateReplaceDelete(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, models.Product{ID: 10, Name: "Black Widow 3.0", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)

	_, err = svc.CreateProduct(ctx, models.Product{ID: 11, Name: "Black Widow 3.0"})
	assert.Equal(t, catalog.KindConflict, catalog.KindOf(err))

	require.NoError(t, svc.ReplaceProduct(ctx, 10, models.Product{ID: 77, Name: "Black Widow Gold", Price: 180}))
	p, err := store.FindByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Black Widow Gold", p.Name)

	err = svc.ReplaceProduct(ctx, 99, models.Product{Name: "Ghost"})
	assert.Equal(t, catalog.KindNotFound, catalog.KindOf(err))

	err = svc.ReplaceProduct(ctx, 99, models.Product{Name: "Phaze II"})
	assert.Equal(t, catalog.KindNotFound, catalog.KindOf(err))

	require.NoError(t, svc.DeleteProduct(ctx, 10))
	err = svc.DeleteProduct(ctx, 10)
	assert.Equal(t, catalog.KindNotFound, catalog.KindOf(err))
}

func TestCategories(t *testing.T) {
	svc, _ := newService(t)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	view, err := svc.GetCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Storm", view.ManufacturerName)
	assert.Equal(t, []int{1, 2}, productIDs(view.Products))

	_, err = svc.GetCategory(context.Background(), 42)
	assert.Equal(t, catalog.KindNotFound, catalog.KindOf(err))
}

func TestKindOfAndPublicMessage(t *testing.T) {
	cases := []struct {
		err  error
		kind catalog.Kind
	}{
		{nil, ""},
		{repo.ErrProductNotFound, catalog.KindNotFound},
		{fmt.Errorf("wrapped: %w", repo.ErrDuplicatedValueUnique), catalog.KindConflict},
		{&query.ParamError{Param: "size", Reason: "must be positive"}, catalog.KindBadRequest},
		{errors.New("connection reset by peer"), catalog.KindUnexpected},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, catalog.KindOf(c.err))
	}

	msg := catalog.PublicMessage(errors.New("pq: password authentication failed for user admin"))
	assert.NotContains(t, msg, "password")
}

func TestStats(t *testing.T) {
	svc, _ := newService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalProducts)
	assert.Equal(t, int64(3), stats.AvailableProducts)
	require.Len(t, stats.Manufacturers, 3)
	assert.Equal(t, catalog.ManufacturerStats{CategoryID: 2, ManufacturerName: "Roto Grip", ProductCount: 2, AvailableCount: 1}, stats.Manufacturers[1])
	assert.Zero(t, stats.Manufacturers[2].ProductCount)
}
