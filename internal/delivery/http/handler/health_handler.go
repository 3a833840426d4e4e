package handler

import (
	"servi-search/internal/pkg/response"
	"servi-search/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	catalogs usecase.CatalogProvider
}

func NewHealthHandler(catalogs usecase.CatalogProvider) *HealthHandler {
	return &HealthHandler{catalogs: catalogs}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{"catalog_loaded": false}
	if h.catalogs != nil {
		if cat := h.catalogs.Current(); cat != nil {
			data["catalog_loaded"] = true
			data["catalog_version"] = cat.Version()
			data["categories"] = cat.Len()
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
