// Package seed prepares a catalog store: indexes first, then the stock
// categories and products when the store is empty.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
	"github.com/rogerio-castellano/bowling-catalog/internal/repo"
)

type Result struct {
	Categories int
	Products   int
}

// Run is idempotent: each collection is filled only when it holds no records.
func Run(ctx context.Context, r repo.CatalogRepository, log *slog.Logger) (Result, error) {
	return RunWith(ctx, r, log, Categories, Products)
}

func RunWith(ctx context.Context, r repo.CatalogRepository, log *slog.Logger, categories []models.Category, products []models.Product) (Result, error) {
	var res Result

	if err := r.EnsureIndexes(ctx); err != nil {
		return res, fmt.Errorf("seed: ensure indexes: %w", err)
	}

	existing, err := r.FindCategories(ctx, query.All())
	if err != nil {
		return res, fmt.Errorf("seed: list categories: %w", err)
	}
	if len(existing) == 0 {
		for _, c := range categories {
			if err := r.InsertCategory(ctx, c); err != nil {
				return res, fmt.Errorf("seed: insert category %d: %w", c.ID, err)
			}
			res.Categories++
		}
	}

	count, err := r.Count(ctx, query.All())
	if err != nil {
		return res, fmt.Errorf("seed: count products: %w", err)
	}
	if count == 0 {
		for _, p := range products {
			if err := r.Insert(ctx, p); err != nil {
				return res, fmt.Errorf("seed: insert product %d: %w", p.ID, err)
			}
			res.Products++
		}
	}

	log.Info("catalog seeded", "categories", res.Categories, "products", res.Products)
	return res, nil
}
