package seeder

import (
	"context"
	"fmt"

	"servi-search/internal/database"
	"servi-search/internal/search"
)

// CategoriesSeeder upserts every catalog entry into categories, recording its
// declaration order in position, and replaces its tags. With Prune set,
// categories missing from the catalog are removed.
type CategoriesSeeder struct {
	Catalog *search.Catalog
	Prune   bool
}

func (CategoriesSeeder) Name() string { return "categories" }

func (s CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	if s.Catalog == nil || s.Catalog.Len() == 0 {
		return fmt.Errorf("empty catalog")
	}
	if err := EnsureTableColumns(ctx, db, "categories", "id", "category_key", "category_name", "position"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "category_tags", "category_id", "tag", "position"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	ids := make([]int32, 0, s.Catalog.Len())
	for i, e := range s.Catalog.Entries() {
		ids = append(ids, int32(e.Category.ID))

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO categories (id, category_key, category_name, position) VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET category_key = EXCLUDED.category_key, category_name = EXCLUDED.category_name, position = EXCLUDED.position, updated_at = now()`,
			e.Category.ID,
			e.Category.Key,
			e.Category.Name,
			i,
		); err != nil {
			return fmt.Errorf("upsert category %d: %w", e.Category.ID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM category_tags WHERE category_id = $1`, e.Category.ID); err != nil {
			return err
		}
		for pos, tag := range e.Synonyms {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO category_tags (category_id, tag, position) VALUES ($1, $2, $3) ON CONFLICT (category_id, tag) DO NOTHING`,
				e.Category.ID,
				tag,
				pos,
			); err != nil {
				return fmt.Errorf("insert tag %q: %w", tag, err)
			}
		}
	}

	if s.Prune {
		if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE NOT (id = ANY($1))`, ids); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
