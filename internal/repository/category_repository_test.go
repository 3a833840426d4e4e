package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"servi-search/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan dest mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			*d = row[i].(int)
		case *string:
			*d = row[i].(string)
		default:
			return fmt.Errorf("unsupported scan type")
		}
	}
	return nil
}

type fakeDB struct {
	queries map[string][][]any
	err     error
	seen    []string
}

func (db *fakeDB) Close() error   { return nil }
func (db *fakeDB) SQLDB() *sql.DB { return nil }
func (db *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	db.seen = append(db.seen, query)
	if db.err != nil {
		return nil, db.err
	}
	q := strings.ToLower(query)
	for prefix, data := range db.queries {
		if strings.Contains(q, prefix) {
			return &fakeRows{data: data}, nil
		}
	}
	return &fakeRows{}, nil
}

func TestPostgresCategoryRepository_List(t *testing.T) {
	db := &fakeDB{queries: map[string][][]any{
		"from categories": {
			{1, "plomeria", "Plomería"},
			{2, "electricidad", "Electricidad"},
		},
		"from category_tags": {
			{1, "grifo", 0},
			{2, "enchufe", 0},
		},
	}}
	repo := NewPostgresCategoryRepository(db)

	cats, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Plomería", cats[0].Name)
	assert.Equal(t, "electricidad", cats[1].Key)

	tags, err := repo.ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "grifo", tags[0].Keyword)
	assert.Equal(t, 2, tags[1].CategoryID)

	require.Len(t, db.seen, 2)
	assert.Contains(t, db.seen[0], "ORDER BY position ASC, id ASC")
	assert.Contains(t, db.seen[1], "ORDER BY category_id ASC, position ASC")
}

func TestPostgresCategoryRepository_QueryError(t *testing.T) {
	repo := NewPostgresCategoryRepository(&fakeDB{err: errors.New("down")})

	_, err := repo.ListCategories(context.Background())
	assert.Error(t, err)
	_, err = repo.ListTags(context.Background())
	assert.Error(t, err)
}
