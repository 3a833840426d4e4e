package app

import (
	"context"
	"fmt"
	"strings"

	"servi-search/internal/config"
	"servi-search/internal/delivery/http/handler"
	"servi-search/internal/delivery/http/middleware"
	"servi-search/internal/delivery/http/routes"
	"servi-search/internal/usecase"
	"servi-search/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber *fiber.App
}

// New builds the HTTP application on top of an initialised container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap wires every dependency and starts the background workers (ws
// hub, optional catalog watch). The returned cleanup stops them and releases
// connections.
func Bootstrap(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	go c.Hub.Run(runCtx)

	if cfg.Catalog.Watch {
		if cfg.Catalog.Source == config.CatalogSourceFile && strings.TrimSpace(cfg.Catalog.Path) != "" {
			go func() {
				if err := c.Catalogs.Watch(runCtx, cfg.Catalog.Path); err != nil {
					logger.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("catalog watch stopped")
				}
			}()
		} else {
			logger.Warn().Msg("CATALOG_WATCH only applies to a file catalog with CATALOG_PATH set")
		}
	}

	cleanup := func() error {
		cancel()
		ws.SetDefaultHub(nil)
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger zerolog.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger)
	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	searchUC := usecase.NewCategorySearchUsecase(c.Catalogs, c.Logger)
	selectionUC := usecase.NewSelectionUsecase(c.Catalogs, c.Cache, usecase.SelectionConfig{
		RequestFlowPath:  c.Config.Selection.RequestFlowPath,
		AuthRedirectPath: c.Config.Selection.AuthRedirectPath,
		PendingTTL:       c.Config.Selection.PendingTTL,
	}, c.Logger)

	routes.NewRegistry(routes.Handlers{
		Health:     handler.NewHealthHandler(c.Catalogs),
		Categories: handler.NewCategoryHandler(searchUC),
		Selection:  handler.NewSelectionHandler(selectionUC),
		LiveSearch: ws.NewHandler(c.Hub, searchUC, c.Config.Search.DebounceWindow, c.Logger),
		Auth:       middleware.NewAuthMiddleware(c.JWT),
	}).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
