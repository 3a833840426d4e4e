package usecase

import (
	"context"
	"time"

	"servi-search/internal/search"

	"github.com/rs/zerolog"
)

type CatalogProvider interface {
	Current() *search.Catalog
}

type CategorySearchResult struct {
	Query          string
	CatalogVersion string
	Results        search.Results
}

type CategorySearchUsecase interface {
	Search(ctx context.Context, query string) (CategorySearchResult, error)
	Catalog(ctx context.Context) (*search.Catalog, error)
}

type CategorySearch struct {
	catalogs CatalogProvider
	logger   zerolog.Logger
}

func NewCategorySearchUsecase(catalogs CatalogProvider, logger zerolog.Logger) *CategorySearch {
	return &CategorySearch{catalogs: catalogs, logger: logger}
}

func (u *CategorySearch) Search(ctx context.Context, query string) (CategorySearchResult, error) {
	c, err := u.Catalog(ctx)
	if err != nil {
		return CategorySearchResult{}, err
	}

	start := time.Now()
	res := search.Search(query, c)

	u.logger.Debug().
		Str("query", query).
		Str("catalog_version", c.Version()).
		Int("direct", len(res.Direct)).
		Int("related", len(res.Synonyms)).
		Dur("took", time.Since(start)).
		Msg("category search")

	return CategorySearchResult{Query: query, CatalogVersion: c.Version(), Results: res}, nil
}

func (u *CategorySearch) Catalog(_ context.Context) (*search.Catalog, error) {
	if u == nil || u.catalogs == nil {
		return nil, ErrCatalogUnavailable
	}
	c := u.catalogs.Current()
	if c == nil {
		return nil, ErrCatalogUnavailable
	}
	return c, nil
}
