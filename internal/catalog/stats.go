package catalog

import (
	"context"
	"time"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

type ManufacturerStats struct {
	CategoryID       int    `json:"categoryId"`
	ManufacturerName string `json:"manufacturerName"`
	ProductCount     int64  `json:"productCount"`
	AvailableCount   int64  `json:"availableCount"`
}

// Stats summarises the catalog for a dashboard view.
type Stats struct {
	TotalProducts     int64               `json:"totalProducts"`
	AvailableProducts int64               `json:"availableProducts"`
	Manufacturers     []ManufacturerStats `json:"manufacturers"`
}

// Stats is computed from store counts only, so it works on every backend.
func (s *Service) Stats(ctx context.Context) (stats Stats, err error) {
	defer func(start time.Time) { record("stats", start, err) }(time.Now())

	available := query.Eq(query.FieldAvailable, true)

	if stats.TotalProducts, err = s.repo.Count(ctx, query.All()); err != nil {
		return Stats{}, err
	}
	if stats.AvailableProducts, err = s.repo.Count(ctx, available); err != nil {
		return Stats{}, err
	}

	categories, err := s.repo.FindCategories(ctx, query.All())
	if err != nil {
		return Stats{}, err
	}

	stats.Manufacturers = make([]ManufacturerStats, 0, len(categories))
	for _, c := range categories {
		inCategory := query.Eq(query.FieldCategoryID, c.ID)
		m := ManufacturerStats{CategoryID: c.ID, ManufacturerName: c.ManufacturerName}
		if m.ProductCount, err = s.repo.Count(ctx, inCategory); err != nil {
			return Stats{}, err
		}
		if m.AvailableCount, err = s.repo.Count(ctx, query.And(inCategory, available)); err != nil {
			return Stats{}, err
		}
		stats.Manufacturers = append(stats.Manufacturers, m)
	}
	return stats, nil
}
