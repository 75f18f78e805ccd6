package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage   = 1
	DefaultSize   = 50
	MaxSize       = 100
	DefaultSortBy = "Id"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// QueryParameters holds paging and ordering input for a catalog request.
// Every setter enforces its invariant at assignment time: a rejected value
// leaves the previous one in place instead of failing.
type QueryParameters struct {
	page      int
	size      int
	sortBy    string
	sortOrder string
}

// NewQueryParameters returns parameters holding the defaults.
func NewQueryParameters() QueryParameters {
	return QueryParameters{
		page:      DefaultPage,
		size:      DefaultSize,
		sortBy:    DefaultSortBy,
		sortOrder: SortAsc,
	}
}

func (q QueryParameters) Page() int         { return q.page }
func (q QueryParameters) Size() int         { return q.size }
func (q QueryParameters) SortBy() string    { return q.sortBy }
func (q QueryParameters) SortOrder() string { return q.sortOrder }

// SetPage stores v as is. Non-positive pages are rejected later by Paginate.
func (q *QueryParameters) SetPage(v int) {
	q.page = v
}

// SetSize caps v at MaxSize. There is no lower bound here.
func (q *QueryParameters) SetSize(v int) {
	q.size = min(v, MaxSize)
}

// SetSortBy ignores empty or whitespace input.
func (q *QueryParameters) SetSortBy(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	q.sortBy = v
}

// SetSortOrder accepts "asc" or "desc" in any case and ignores anything else.
func (q *QueryParameters) SetSortOrder(v string) {
	v = strings.ToLower(v)
	if v == SortAsc || v == SortDesc {
		q.sortOrder = v
	}
}

// ProductQuery adds the product browsing filters to QueryParameters.
type ProductQuery struct {
	QueryParameters
	MinPrice   *float64
	MaxPrice   *float64
	SearchTerm string
}

// NewProductQuery returns a query with default paging and no filters.
func NewProductQuery() ProductQuery {
	return ProductQuery{QueryParameters: NewQueryParameters()}
}

// Normalize builds a ProductQuery from raw request parameters. Values that
// are present but cannot be parsed as numbers are rejected with a
// *ParamError; everything else goes through the permissive setters.
func Normalize(values url.Values) (ProductQuery, error) {
	q := NewProductQuery()

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return ProductQuery{}, invalidParam("page", "must be an integer")
		}
		q.SetPage(page)
	}

	if raw := strings.TrimSpace(values.Get("size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return ProductQuery{}, invalidParam("size", "must be an integer")
		}
		q.SetSize(size)
	}

	q.SetSortBy(values.Get("sortBy"))
	q.SetSortOrder(values.Get("sortOrder"))

	var err error
	if q.MinPrice, err = parsePrice(values, "minPrice"); err != nil {
		return ProductQuery{}, err
	}
	if q.MaxPrice, err = parsePrice(values, "maxPrice"); err != nil {
		return ProductQuery{}, err
	}

	q.SearchTerm = values.Get("searchTerm")
	return q, nil
}

func parsePrice(values url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalidParam(name, "must be a decimal number")
	}
	return &v, nil
}
