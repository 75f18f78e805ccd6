package handlers

import (
	"net/http"
)

// GetCatalogStatsHandler godoc
// @Summary Catalog dashboard figures
// @Description Product totals and per-manufacturer counts.
// @Tags stats
// @Produce json
// @Success 200 {object} catalog.Stats
// @Failure 500 {object} ErrorResponse
// @Router /api/stats [get]
func GetCatalogStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := catalogService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, stats)
}
