package query

import (
	"strconv"
	"strings"
)

// Sort is a resolved ordering instruction.
type Sort struct {
	Field      Field
	Descending bool
}

// DefaultSort orders by identifier, ascending.
var DefaultSort = Sort{Field: FieldID}

// sortable maps the lower-cased public sort keys to the fields that may be
// ordered on. Nothing outside this table ever reaches a store.
var sortable = map[string]Field{
	"id":             FieldID,
	"name":           FieldName,
	"weight":         FieldWeight,
	"colour":         FieldColour,
	"rg":             FieldRG,
	"diff":           FieldDiff,
	"laneconditions": FieldLaneConditions,
	"coverstock":     FieldCoverstock,
	"core":           FieldCore,
	"price":          FieldPrice,
	"categoryid":     FieldCategoryID,
}

// ResolveSort translates a sort key and direction into a Sort. Keys are
// matched case-insensitively; unknown keys are rejected.
func ResolveSort(sortBy, sortOrder string) (Sort, error) {
	key := strings.ToLower(strings.TrimSpace(sortBy))
	if key == "" {
		key = strings.ToLower(DefaultSortBy)
	}

	f, ok := sortable[key]
	if !ok {
		return Sort{}, invalidParam("sortBy", "unknown sort field "+strconv.Quote(sortBy))
	}
	return Sort{Field: f, Descending: sortOrder == SortDesc}, nil
}
