package handlers

import "github.com/rogerio-castellano/bowling-catalog/internal/models"

type ProductRequest struct {
	Id             int     `json:"id"`
	Name           string  `json:"name"`
	Weight         int     `json:"weight"`
	Colour         string  `json:"colour"`
	RG             float64 `json:"rg"`
	Diff           float64 `json:"diff"`
	LaneConditions string  `json:"laneConditions"`
	Coverstock     string  `json:"coverstock"`
	Core           string  `json:"core"`
	Price          float64 `json:"price"`
	IsAvailable    bool    `json:"isAvailable"`
	CategoryId     int     `json:"categoryId"`
}

func (p ProductRequest) toModel() models.Product {
	return models.Product{
		ID:             p.Id,
		Name:           p.Name,
		Weight:         p.Weight,
		Colour:         p.Colour,
		RG:             p.RG,
		Diff:           p.Diff,
		LaneConditions: p.LaneConditions,
		Coverstock:     p.Coverstock,
		Core:           p.Core,
		Price:          p.Price,
		IsAvailable:    p.IsAvailable,
		CategoryID:     p.CategoryId,
	}
}

type ProductResponse struct {
	Id             int     `json:"id"`
	Name           string  `json:"name"`
	Weight         int     `json:"weight"`
	Colour         string  `json:"colour"`
	RG             float64 `json:"rg"`
	Diff           float64 `json:"diff"`
	LaneConditions string  `json:"laneConditions"`
	Coverstock     string  `json:"coverstock"`
	Core           string  `json:"core"`
	Price          float64 `json:"price"`
	IsAvailable    bool    `json:"isAvailable"`
	CategoryId     int     `json:"categoryId"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:             p.ID,
		Name:           p.Name,
		Weight:         p.Weight,
		Colour:         p.Colour,
		RG:             p.RG,
		Diff:           p.Diff,
		LaneConditions: p.LaneConditions,
		Coverstock:     p.Coverstock,
		Core:           p.Core,
		Price:          p.Price,
		IsAvailable:    p.IsAvailable,
		CategoryId:     p.CategoryID,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	return response
}

type CategoryResponse struct {
	Id               int    `json:"id"`
	ManufacturerName string `json:"manufacturerName"`
}

type CategoryDetailResponse struct {
	Id               int               `json:"id"`
	ManufacturerName string            `json:"manufacturerName"`
	Products         []ProductResponse `json:"products"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
