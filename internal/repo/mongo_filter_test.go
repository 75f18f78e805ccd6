package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

func TestMongoFilterCatalogQuery(t *testing.T) {
	minPrice := 100.0
	q := query.NewProductQuery()
	q.MinPrice = &minPrice
	q.SearchTerm = "blue"

	got, err := mongoFilter(query.CompileFilter(q), productKeys)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "$and", got[0].Key)
	clauses := got[0].Value.(bson.A)
	require.Len(t, clauses, 3)
	assert.Equal(t, bson.D{{Key: "IsAvailable", Value: true}}, clauses[0])
	assert.Equal(t, bson.D{{Key: "Price", Value: bson.D{{Key: "$gte", Value: 100.0}}}}, clauses[1])

	search := clauses[2].(bson.D)
	assert.Equal(t, "$or", search[0].Key)
	alternatives := search[0].Value.(bson.A)
	require.Len(t, alternatives, 5)
	assert.Equal(t, bson.D{{Key: "Colour", Value: primitive.Regex{Pattern: "blue", Options: "i"}}}, alternatives[0])
}

func TestMongoFilterQuotesRegexMetacharacters(t *testing.T) {
	got, err := mongoFilter(query.Contains(query.FieldName, "a.*(b"), productKeys)
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "Name", Value: primitive.Regex{Pattern: `a\.\*\(b`, Options: "i"}}}, got)

	got, err = mongoFilter(query.EqualFold(query.FieldLaneConditions, "oily"), productKeys)
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "LaneConditions", Value: primitive.Regex{Pattern: "^oily$", Options: "i"}}}, got)
}

func TestMongoFilterIn(t *testing.T) {
	got, err := mongoFilter(query.ProductsInCategories([]int{1, 4}), productKeys)
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "CategoryId", Value: bson.D{{Key: "$in", Value: bson.A{1, 4}}}}}, got)
}

func TestMongoFilterEmptyOrMatchesNothing(t *testing.T) {
	got, err := mongoFilter(query.Predicate{Op: query.OpOr}, productKeys)
	require.NoError(t, err)
	assert.Equal(t, matchNothing, got)
}

func TestMongoFilterRejectsUnmappedField(t *testing.T) {
	_, err := mongoFilter(query.Eq(query.FieldPrice, 1), categoryKeys)
	assert.Error(t, err)
}

func TestMongoSortAddsIDTieBreak(t *testing.T) {
	got, err := mongoSort(query.Sort{Field: query.FieldPrice, Descending: true}, productKeys)
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "Price", Value: -1}, {Key: "_id", Value: 1}}, got)

	got, err = mongoSort(query.DefaultSort, productKeys)
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, got)
}
