package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/bowling-catalog/internal/metrics"
	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
	"github.com/rogerio-castellano/bowling-catalog/internal/repo"
)

// Service runs catalog operations against a CatalogRepository. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	repo repo.CatalogRepository
}

func NewService(r repo.CatalogRepository) *Service {
	return &Service{repo: r}
}

// record observes the duration and outcome of op.
func record(op string, start time.Time, err error) {
	metrics.ObserveStore(op, start)
	outcome := "ok"
	if err != nil {
		outcome = string(KindOf(err))
	}
	metrics.RecordOutcome(op, outcome)
}

// ListProducts compiles q and returns the requested page together with the
// number of products matching the filter across all pages.
func (s *Service) ListProducts(ctx context.Context, q query.ProductQuery) (products []models.Product, total int64, err error) {
	defer func(start time.Time) { record("list_products", start, err) }(time.Now())

	d, err := query.Compile(q)
	if err != nil {
		return nil, 0, err
	}

	products, err = s.repo.Find(ctx, d)
	if err != nil {
		return nil, 0, err
	}
	total, err = s.repo.Count(ctx, d.Filter)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *Service) GetProduct(ctx context.Context, id int) (p models.Product, err error) {
	defer func(start time.Time) { record("get_product", start, err) }(time.Now())

	p, err = s.repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrProductNotFound) {
		return models.Product{}, &Error{Kind: KindNotFound, Message: fmt.Sprintf("Product with id %d not found.", id), Err: err}
	}
	return p, err
}

// ProductsByManufacturer returns the products of every category whose
// manufacturer name contains name, ignoring case. It fails with KindNoMatch
// when no category matches, so that an unknown manufacturer is not confused
// with one that has no products.
func (s *Service) ProductsByManufacturer(ctx context.Context, name string) (products []models.Product, err error) {
	defer func(start time.Time) { record("products_by_manufacturer", start, err) }(time.Now())

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &Error{Kind: KindBadRequest, Message: "Manufacturer name is required."}
	}

	categories, err := s.repo.FindCategories(ctx, query.ManufacturerFilter(name))
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, &Error{Kind: KindNoMatch, Message: fmt.Sprintf("No categories found for manufacturer '%s'.", name)}
	}

	ids := make([]int, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return s.repo.Find(ctx, query.Descriptor{
		Filter: query.ProductsInCategories(ids),
		Sort:   query.DefaultSort,
	})
}

// ProductsByLaneConditions returns the products whose lane conditions equal
// any of the comma-separated tokens in raw. An input without tokens is a
// bad request; tokens that match nothing yield an empty list.
func (s *Service) ProductsByLaneConditions(ctx context.Context, raw string) (products []models.Product, err error) {
	defer func(start time.Time) { record("products_by_lane_condition", start, err) }(time.Now())

	tokens, err := query.ParseLaneConditions(raw)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, query.Descriptor{
		Filter: query.LaneConditionFilter(tokens),
		Sort:   query.DefaultSort,
	})
}

func (s *Service) CreateProduct(ctx context.Context, p models.Product) (created models.Product, err error) {
	defer func(start time.Time) { record("create_product", start, err) }(time.Now())

	err = s.repo.Insert(ctx, p)
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.Product{}, &Error{Kind: KindConflict, Message: "A product with the same id or name already exists.", Err: err}
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// ReplaceProduct stores p under id. The id inside p is ignored.
func (s *Service) ReplaceProduct(ctx context.Context, id int, p models.Product) (err error) {
	defer func(start time.Time) { record("replace_product", start, err) }(time.Now())

	p.ID = id
	matched, err := s.repo.Replace(ctx, id, p)
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return &Error{Kind: KindConflict, Message: "Another product already uses this name.", Err: err}
	}
	if err != nil {
		return err
	}
	if matched == 0 {
		return &Error{Kind: KindNotFound, Message: fmt.Sprintf("Product with id %d not found.", id)}
	}
	return nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int) (err error) {
	defer func(start time.Time) { record("delete_product", start, err) }(time.Now())

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &Error{Kind: KindNotFound, Message: fmt.Sprintf("Product with id %d not found.", id)}
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context) (categories []models.Category, err error) {
	defer func(start time.Time) { record("list_categories", start, err) }(time.Now())

	return s.repo.FindCategories(ctx, query.All())
}

// GetCategory returns the category with the products grouped under it.
func (s *Service) GetCategory(ctx context.Context, id int) (view models.CategoryView, err error) {
	defer func(start time.Time) { record("get_category", start, err) }(time.Now())

	categories, err := s.repo.FindCategories(ctx, query.Eq(query.FieldID, id))
	if err != nil {
		return models.CategoryView{}, err
	}
	if len(categories) == 0 {
		return models.CategoryView{}, &Error{Kind: KindNotFound, Message: fmt.Sprintf("Category with id %d not found.", id), Err: repo.ErrCategoryNotFound}
	}

	products, err := s.repo.Find(ctx, query.Descriptor{
		Filter: query.Eq(query.FieldCategoryID, id),
		Sort:   query.DefaultSort,
	})
	if err != nil {
		return models.CategoryView{}, err
	}
	return models.CategoryView{Category: categories[0], Products: products}, nil
}
