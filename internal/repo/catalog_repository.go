package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

// CatalogRepository executes compiled catalog queries against a store.
type CatalogRepository interface {
	// Find returns the products matching d.Filter in d.Sort order, windowed
	// by d.Window. It returns an empty slice, never nil, when nothing matches.
	Find(ctx context.Context, d query.Descriptor) ([]models.Product, error)
	// Count returns how many products match filter.
	Count(ctx context.Context, filter query.Predicate) (int64, error)
	// FindByID returns ErrProductNotFound when no product has the id.
	FindByID(ctx context.Context, id int) (models.Product, error)
	// FindCategories returns the matching categories ordered by id.
	FindCategories(ctx context.Context, filter query.Predicate) ([]models.Category, error)
	// Insert returns ErrDuplicatedValueUnique when the id or name is taken.
	Insert(ctx context.Context, p models.Product) error
	// Replace stores p under id and reports how many products matched.
	Replace(ctx context.Context, id int, p models.Product) (int64, error)
	// Delete removes the product and reports how many were deleted.
	Delete(ctx context.Context, id int) (int64, error)
	InsertCategory(ctx context.Context, c models.Category) error
	// EnsureIndexes creates the storage structures and unique indexes.
	EnsureIndexes(ctx context.Context) error
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found in the repository.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicatedValueUnique is returned when a write violates a unique key.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
