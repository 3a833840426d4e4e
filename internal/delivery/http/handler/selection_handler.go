package handler

import (
	"errors"

	"servi-search/internal/delivery/http/dto"
	"servi-search/internal/delivery/http/middleware"
	"servi-search/internal/pkg/response"
	"servi-search/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SelectionHandler struct {
	uc usecase.SelectionUsecase
}

func NewSelectionHandler(uc usecase.SelectionUsecase) *SelectionHandler {
	return &SelectionHandler{uc: uc}
}

// RegisterRoutes mounts selection endpoints. optionalAuth runs on the select
// route, requiredAuth on resume.
func (h *SelectionHandler) RegisterRoutes(r fiber.Router, optionalAuth, requiredAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/select", optionalAuth, h.Select)
	r.Post("/select/resume", requiredAuth, h.Resume)
}

func (h *SelectionHandler) Select(c fiber.Ctx) error {
	var req dto.SelectCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := usecase.SelectInput{Categoria: req.Categoria}
	if uid, ok := middleware.UserIDFromCtx(c); ok {
		in.UserID = &uid
	}

	nav, err := h.uc.Select(c.Context(), in)
	if err != nil {
		return mapSelectionUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewNavigationResponse(nav))
}

func (h *SelectionHandler) Resume(c fiber.Ctx) error {
	uid, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.ResumeSelectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	intentID, err := uuid.Parse(req.IntentID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	nav, err := h.uc.Resume(c.Context(), uid, intentID)
	if err != nil {
		return mapSelectionUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewNavigationResponse(nav))
}

func mapSelectionUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var authErr *usecase.AuthRequiredError
	if errors.As(err, &authErr) {
		return middleware.NewAppError(fiber.StatusUnauthorized, authErr.Notice, dto.NewAuthRequiredResponse(authErr), err)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnknownCategory):
		return middleware.NewAppError(fiber.StatusNotFound, "Category not found", nil, err)
	case errors.Is(err, usecase.ErrSelectionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Pending selection not found", nil, err)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
