package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

// InMemoryCatalogRepository is an in-memory implementation of CatalogRepository.
type InMemoryCatalogRepository struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
}

// NewInMemoryCatalogRepository creates a new instance of InMemoryCatalogRepository.
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		products:   []models.Product{},
		categories: []models.Category{},
	}
}

func productValue(p models.Product) func(query.Field) any {
	return func(f query.Field) any {
		switch f {
		case query.FieldID:
			return p.ID
		case query.FieldName:
			return p.Name
		case query.FieldWeight:
			return p.Weight
		case query.FieldColour:
			return p.Colour
		case query.FieldRG:
			return p.RG
		case query.FieldDiff:
			return p.Diff
		case query.FieldLaneConditions:
			return p.LaneConditions
		case query.FieldCoverstock:
			return p.Coverstock
		case query.FieldCore:
			return p.Core
		case query.FieldPrice:
			return p.Price
		case query.FieldAvailable:
			return p.IsAvailable
		case query.FieldCategoryID:
			return p.CategoryID
		}
		return nil
	}
}

func categoryValue(c models.Category) func(query.Field) any {
	return func(f query.Field) any {
		switch f {
		case query.FieldID:
			return c.ID
		case query.FieldManufacturerName:
			return c.ManufacturerName
		}
		return nil
	}
}

// compareProducts orders by s and breaks ties by ascending id.
func compareProducts(s query.Sort) func(a, b models.Product) int {
	return func(a, b models.Product) int {
		c, _ := query.Compare(productValue(a)(s.Field), productValue(b)(s.Field))
		if s.Descending {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (r *InMemoryCatalogRepository) Find(_ context.Context, d query.Descriptor) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if d.Filter.Matches(productValue(p)) {
			filtered = append(filtered, p)
		}
	}
	slices.SortStableFunc(filtered, compareProducts(d.Sort))

	start := clamp(d.Window.Offset, 0, len(filtered))
	end := len(filtered)
	if d.Window.Limit > 0 {
		end = clamp(start+d.Window.Limit, start, len(filtered))
	}

	return filtered[start:end], nil
}

func (r *InMemoryCatalogRepository) Count(_ context.Context, filter query.Predicate) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, p := range r.products {
		if filter.Matches(productValue(p)) {
			n++
		}
	}
	return n, nil
}

// FindByID retrieves a product by its ID.
func (r *InMemoryCatalogRepository) FindByID(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryCatalogRepository) FindCategories(_ context.Context, filter query.Predicate) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := []models.Category{}
	for _, c := range r.categories {
		if filter.Matches(categoryValue(c)) {
			found = append(found, c)
		}
	}
	slices.SortFunc(found, func(a, b models.Category) int { return cmp.Compare(a.ID, b.ID) })
	return found, nil
}

// Insert adds a new product to the repository.
func (r *InMemoryCatalogRepository) Insert(_ context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == product.ID || p.Name == product.Name {
			return ErrDuplicatedValueUnique
		}
	}
	r.products = append(r.products, product)
	return nil
}

// Replace overwrites the product stored under id.
func (r *InMemoryCatalogRepository) Replace(_ context.Context, id int, product models.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.products, func(p models.Product) bool { return p.ID == id })
	if idx < 0 {
		return 0, nil
	}
	for _, p := range r.products {
		if p.ID != id && p.Name == product.Name {
			return 0, ErrDuplicatedValueUnique
		}
	}

	product.ID = id
	r.products[idx] = product
	return 1, nil
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryCatalogRepository) Delete(_ context.Context, id int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *InMemoryCatalogRepository) InsertCategory(_ context.Context, category models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.ID == category.ID || c.ManufacturerName == category.ManufacturerName {
			return ErrDuplicatedValueUnique
		}
	}
	r.categories = append(r.categories, category)
	return nil
}

// EnsureIndexes is a no-op: uniqueness is checked on every write.
func (r *InMemoryCatalogRepository) EnsureIndexes(context.Context) error {
	return nil
}

// Clear removes every product and category.
func (r *InMemoryCatalogRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
	r.categories = []models.Category{}
}
