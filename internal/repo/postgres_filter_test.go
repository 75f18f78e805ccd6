package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

func TestFindProductsSQL(t *testing.T) {
	maxPrice := 180.0
	q := query.NewProductQuery()
	q.MaxPrice = &maxPrice
	q.SearchTerm = "50%_off"
	q.SetPage(3)
	q.SetSize(20)
	q.SetSortBy("price")
	q.SetSortOrder("desc")

	d, err := query.Compile(q)
	require.NoError(t, err)

	stmt, args, err := findProductsSQL(d)
	require.NoError(t, err)

	assert.Equal(t, productSelect+
		" WHERE (is_available = $1 AND price <= $2 AND (colour ILIKE $3 OR name ILIKE $4 OR lane_conditions ILIKE $5 OR coverstock ILIKE $6 OR core ILIKE $7))"+
		" ORDER BY price DESC, id ASC LIMIT $8 OFFSET $9", stmt)

	pattern := `%50\%\_off%`
	assert.Equal(t, []any{true, 180.0, pattern, pattern, pattern, pattern, pattern, 20, 40}, args)
}

func TestSQLWhereMatchAll(t *testing.T) {
	b := newSQLBuilder(productColumns)
	where, err := b.where(query.All())
	require.NoError(t, err)
	assert.Equal(t, "TRUE", where)
	assert.Empty(t, b.args)
}

func TestSQLWhereInAndEqualFold(t *testing.T) {
	b := newSQLBuilder(productColumns)
	where, err := b.where(query.And(
		query.ProductsInCategories([]int{2, 5}),
		query.LaneConditionFilter([]string{"oily", "dry"}),
	))
	require.NoError(t, err)
	assert.Equal(t, "(category_id IN ($1, $2) AND (LOWER(lane_conditions) = LOWER($3) OR LOWER(lane_conditions) = LOWER($4)))", where)
	assert.Equal(t, []any{2, 5, "oily", "dry"}, b.args)
}

func TestSQLWhereEmptyInIsFalse(t *testing.T) {
	b := newSQLBuilder(productColumns)
	where, err := b.where(query.ProductsInCategories(nil))
	require.NoError(t, err)
	assert.Equal(t, "FALSE", where)
}

func TestSQLOrderByID(t *testing.T) {
	b := newSQLBuilder(productColumns)
	order, err := b.orderBy(query.DefaultSort)
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY id ASC", order)
}
