package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

func TestParseLaneConditions(t *testing.T) {
	tokens, err := query.ParseLaneConditions(" Heavy, light ,,Medium-Heavy ")
	require.NoError(t, err)

	assert.Equal(t, []string{"heavy", "light", "medium-heavy"}, tokens)
}

func TestParseLaneConditions_Empty(t *testing.T) {
	for _, raw := range []string{"", " ", ",,", " , "} {
		_, err := query.ParseLaneConditions(raw)

		var perr *query.ParamError
		assert.ErrorAs(t, err, &perr, "input %q", raw)
	}
}
