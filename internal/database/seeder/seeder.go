package seeder

import (
	"context"

	"servi-search/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
