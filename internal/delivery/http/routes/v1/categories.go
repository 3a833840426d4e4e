package v1

import (
	"servi-search/internal/delivery/http/handler"
	"servi-search/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func RegisterCategories(r fiber.Router, categories *handler.CategoryHandler, selection *handler.SelectionHandler, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	if categories != nil {
		categories.RegisterRoutes(r)
	}
	if selection != nil && authMw != nil {
		selection.RegisterRoutes(r, authMw.Optional(), authMw.Middleware())
	}
}
