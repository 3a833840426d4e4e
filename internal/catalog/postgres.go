package catalog

import (
	"context"
	"fmt"
	"sort"

	"servi-search/internal/domain/category"
	"servi-search/internal/search"
)

// PostgresSource builds the catalog from the categories and category_tags
// tables. Categories keep the order the repository returns, which is their
// declared catalog order. Version is left empty so the content hash is used.
type PostgresSource struct {
	Repo category.Repository
}

func (s PostgresSource) Name() string { return "postgres" }

func (s PostgresSource) Load(ctx context.Context) (*search.Catalog, error) {
	if s.Repo == nil {
		return nil, fmt.Errorf("nil category repository")
	}

	cats, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	tags, err := s.Repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list category tags: %w", err)
	}

	sort.SliceStable(tags, func(i, j int) bool {
		if tags[i].CategoryID != tags[j].CategoryID {
			return tags[i].CategoryID < tags[j].CategoryID
		}
		return tags[i].Position < tags[j].Position
	})

	byCategory := make(map[int][]string, len(cats))
	for _, t := range tags {
		byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t.Keyword)
	}

	entries := make([]category.Entry, 0, len(cats))
	for _, c := range cats {
		entries = append(entries, category.Entry{Category: c, Synonyms: byCategory[c.ID]})
	}
	return search.NewCatalog("", entries)
}
