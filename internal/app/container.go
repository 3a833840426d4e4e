package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servi-search/internal/catalog"
	"servi-search/internal/config"
	"servi-search/internal/database"
	dbpostgres "servi-search/internal/database/postgres"
	"servi-search/internal/infrastructure/cache"
	"servi-search/internal/pkg/jwt"
	"servi-search/internal/repository"
	"servi-search/internal/ws"

	"github.com/rs/zerolog"
)

var errDatabaseNotConfigured = errors.New("CATALOG_SOURCE=postgres requires DB_HOST and DB_NAME")

// Container owns the process-wide dependencies. DB is nil when no database
// is configured.
type Container struct {
	Config   config.Config
	Logger   zerolog.Logger
	DB       database.DB
	Cache    *cache.Redis
	Catalogs *catalog.Store
	Hub      *ws.Hub
	JWT      *jwt.HMACService
}

func NewContainer(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if cfg.Database.Configured() {
		connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err := dbpostgres.Connect(connCtx, cfg.Database)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		c.DB = db
	}

	source, err := catalogSource(cfg.Catalog, c.DB)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Catalogs = catalog.NewStore(source, logger.With().Str("component", "catalog").Logger())
	if err := c.Catalogs.Load(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("load catalog from %s: %w", source.Name(), err)
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	if cfg.JWT.AccessSecret == "" {
		logger.Warn().Msg("JWT_ACCESS_SECRET is empty, every bearer token will be rejected")
	}
	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, 0)

	c.Hub = ws.NewHub(logger.With().Str("component", "ws").Logger())
	ws.SetDefaultHub(c.Hub)
	c.Catalogs.OnReload(ws.OnCatalogReload)

	return c, nil
}

func catalogSource(cfg config.CatalogConfig, db database.DB) (catalog.Source, error) {
	switch cfg.Source {
	case config.CatalogSourcePostgres:
		if db == nil {
			return nil, errDatabaseNotConfigured
		}
		return catalog.PostgresSource{Repo: repository.NewPostgresCategoryRepository(db)}, nil
	default:
		return catalog.FileSource{Path: cfg.Path}, nil
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
