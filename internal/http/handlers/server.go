package handlers

import (
	"github.com/rogerio-castellano/bowling-catalog/internal/catalog"
)

var catalogService *catalog.Service

func SetCatalogService(s *catalog.Service) {
	catalogService = s
}
