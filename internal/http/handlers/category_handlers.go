package handlers

import (
	"net/http"
)

// GetCategoriesHandler godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := catalogService.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{Id: c.ID, ManufacturerName: c.ManufacturerName}
	}
	respond(w, r, http.StatusOK, response)
}

// GetCategoryByIDHandler godoc
// @Summary Get a category with its products
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/categories/{id} [get]
func GetCategoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid category ID")
		return
	}

	view, err := catalogService.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, CategoryDetailResponse{
		Id:               view.ID,
		ManufacturerName: view.ManufacturerName,
		Products:         toProductResponses(view.Products),
	})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
