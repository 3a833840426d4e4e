package v1

import (
	"servi-search/internal/delivery/http/handler"
	"servi-search/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, categories *handler.CategoryHandler, selection *handler.SelectionHandler, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	RegisterCategories(r.Group("/categories"), categories, selection, authMw)
}
