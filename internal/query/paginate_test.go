package query_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		page, size int
		want       query.Window
	}{
		{page: 1, size: 50, want: query.Window{Offset: 0, Limit: 50}},
		{page: 1, size: 7, want: query.Window{Offset: 0, Limit: 7}},
		{page: 2, size: 10, want: query.Window{Offset: 10, Limit: 10}},
		{page: 5, size: 100, want: query.Window{Offset: 400, Limit: 100}},
	}

	for _, tt := range tests {
		got, err := query.Paginate(tt.page, tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestPaginate_RejectsNonPositive(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		param      string
	}{
		{name: "zero page", page: 0, size: 10, param: "page"},
		{name: "negative page", page: -3, size: 10, param: "page"},
		{name: "zero size", page: 1, size: 0, param: "size"},
		{name: "negative size", page: 1, size: -1, param: "size"},
		{name: "offset overflows", page: 922337203685477581, size: 100, param: "page"},
		{name: "offset overflows at max page", page: math.MaxInt, size: 2, param: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := query.Paginate(tt.page, tt.size)

			var perr *query.ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.param, perr.Param)
		})
	}
}
