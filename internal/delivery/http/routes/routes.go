package routes

import (
	"servi-search/internal/delivery/http/handler"
	"servi-search/internal/delivery/http/middleware"
	"servi-search/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health     *handler.HealthHandler
	Categories *handler.CategoryHandler
	Selection  *handler.SelectionHandler
	LiveSearch *ws.Handler
	Auth       *middleware.AuthMiddleware
}

type Registry struct {
	h Handlers
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{h: h}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.h)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.h.LiveSearch != nil {
		r.h.LiveSearch.RegisterRoutes(app)
	}
}
