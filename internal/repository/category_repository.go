package repository

import (
	"context"

	"servi-search/internal/database"
	"servi-search/internal/domain/category"
)

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// ListCategories returns categories in catalog declaration order.
func (r *PostgresCategoryRepository) ListCategories(ctx context.Context) ([]category.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, category_key, category_name FROM categories ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Key, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCategoryRepository) ListTags(ctx context.Context) ([]category.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT category_id, tag, position FROM category_tags ORDER BY category_id ASC, position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]category.Tag, 0)
	for rows.Next() {
		var t category.Tag
		if err := rows.Scan(&t.CategoryID, &t.Keyword, &t.Position); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
