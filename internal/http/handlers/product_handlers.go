package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

// GetProductsHandler godoc
// @Summary Browse available products
// @Description Filters, sorts and pages the available products. The total number of matches is returned in X-Total-Count.
// @Tags products
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param size query int false "Page size, at most 100" default(50)
// @Param sortBy query string false "Sort field" default(Id)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Param minPrice query number false "Lowest price"
// @Param maxPrice query number false "Highest price"
// @Param searchTerm query string false "Matched against colour, name, lane conditions, coverstock and core"
// @Success 200 {array} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q, err := query.Normalize(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, total, err := catalogService.ListProducts(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	headers := http.Header{}
	headers.Set("X-Total-Count", strconv.FormatInt(total, 10))
	respond(w, r, http.StatusOK, toProductResponses(products), headers)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := catalogService.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, toProductResponse(product))
}

// GetProductsByManufacturerHandler godoc
// @Summary List the products of a manufacturer
// @Description The name is matched case-insensitively as a substring of the category manufacturer names.
// @Tags products
// @Produce json
// @Param manufacturerName path string true "Manufacturer name"
// @Success 200 {array} ProductResponse
// @Failure 404 {object} ErrorResponse "No category matches the manufacturer"
// @Failure 500 {object} ErrorResponse
// @Router /api/products/by-manufacturer/{manufacturerName} [get]
func GetProductsByManufacturerHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogService.ProductsByManufacturer(r.Context(), chi.URLParam(r, "manufacturerName"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, toProductResponses(products))
}

// GetProductsByLaneConditionHandler godoc
// @Summary List products by lane condition
// @Tags products
// @Produce json
// @Param laneConditions query string true "Comma-separated lane conditions, e.g. Medium,Heavy"
// @Success 200 {array} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/by-laneCondition [get]
func GetProductsByLaneConditionHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogService.ProductsByLaneConditions(r.Context(), r.URL.Query().Get("laneConditions"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, toProductResponses(products))
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateNewProduct(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := catalogService.CreateProduct(r.Context(), req.toModel())
	if err != nil {
		writeError(w, r, err)
		return
	}

	headers := http.Header{}
	headers.Set("Location", fmt.Sprintf("/api/products/%d", created.ID))
	respond(w, r, http.StatusCreated, toProductResponse(created), headers)
}

// UpdateProductHandler godoc
// @Summary Replace a product
// @Description Stores the body under the path ID; an ID in the body is ignored.
// @Tags products
// @Accept json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Replacement product"
// @Success 204 "Replaced"
// @Failure 400 {array} ProductValidationError
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	if err := catalogService.ReplaceProduct(r.Context(), id, req.toModel()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := catalogService.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
