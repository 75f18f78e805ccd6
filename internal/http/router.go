package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/bowling-catalog/internal/http/handlers"
	mw "github.com/rogerio-castellano/bowling-catalog/internal/http/middleware"
	"github.com/rogerio-castellano/bowling-catalog/internal/metrics"
)

// NewRouter wires the catalog routes. extra middleware, such as the rate
// limiter, only applies to the /api routes.
func NewRouter(extra ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(extra...)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.GetProductsHandler)
			r.Post("/", handlers.CreateProductHandler)
			r.Post("/import", handlers.ImportProductsHandler)
			r.Get("/by-manufacturer/{manufacturerName}", handlers.GetProductsByManufacturerHandler)
			r.Get("/by-laneCondition", handlers.GetProductsByLaneConditionHandler)
			r.Get("/{id}", handlers.GetProductByIDHandler)
			r.Put("/{id}", handlers.UpdateProductHandler)
			r.Delete("/{id}", handlers.DeleteProductHandler)
		})

		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)
		r.Get("/stats", handlers.GetCatalogStatsHandler)
	})
	return r
}
