package database

import (
	"context"
	"database/sql"
)

// DB is the catalog store's view of Postgres: reads for the category
// repository, transactions for the seeder, and a database/sql handle for the
// migration runner.
type DB interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Begin(ctx context.Context) (Tx, error)

	SQLDB() *sql.DB
	Close() error
}

// Tx is a write transaction. Rollback after Commit is a no-op.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}
