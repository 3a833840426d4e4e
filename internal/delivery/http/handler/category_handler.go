package handler

import (
	"errors"

	"servi-search/internal/delivery/http/dto"
	"servi-search/internal/delivery/http/middleware"
	"servi-search/internal/pkg/response"
	"servi-search/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CategoryHandler struct {
	uc usecase.CategorySearchUsecase
}

func NewCategoryHandler(uc usecase.CategorySearchUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/search", h.Search)
}

func (h *CategoryHandler) Search(c fiber.Ctx) error {
	res, err := h.uc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return mapCategoryUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategorySearchResponse(res))
}

func (h *CategoryHandler) List(c fiber.Ctx) error {
	cat, err := h.uc.Catalog(c.Context())
	if err != nil {
		return mapCategoryUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryListResponse(cat))
}

func mapCategoryUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
