package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

func TestResolveSort(t *testing.T) {
	tests := []struct {
		sortBy    string
		sortOrder string
		want      query.Sort
	}{
		{sortBy: "Id", sortOrder: "asc", want: query.DefaultSort},
		{sortBy: "", sortOrder: "asc", want: query.DefaultSort},
		{sortBy: "price", sortOrder: "desc", want: query.Sort{Field: query.FieldPrice, Descending: true}},
		{sortBy: "LaneConditions", sortOrder: "asc", want: query.Sort{Field: query.FieldLaneConditions}},
		{sortBy: "RG", sortOrder: "anything", want: query.Sort{Field: query.FieldRG}},
		{sortBy: "categoryId", sortOrder: "desc", want: query.Sort{Field: query.FieldCategoryID, Descending: true}},
	}

	for _, tt := range tests {
		got, err := query.ResolveSort(tt.sortBy, tt.sortOrder)
		require.NoError(t, err, "sortBy=%q", tt.sortBy)
		assert.Equal(t, tt.want, got, "sortBy=%q sortOrder=%q", tt.sortBy, tt.sortOrder)
	}
}

func TestResolveSort_RejectsUnknownFields(t *testing.T) {
	for _, field := range []string{"password", "$where", "isAvailable", "Name.length"} {
		_, err := query.ResolveSort(field, "asc")

		var perr *query.ParamError
		require.ErrorAs(t, err, &perr, "sortBy=%q", field)
		assert.Equal(t, "sortBy", perr.Param)
	}
}
