package seeder

import "servi-search/internal/search"

// Defaults returns the seeders that load c into the catalog tables.
func Defaults(c *search.Catalog, prune bool) []Seeder {
	return []Seeder{
		CategoriesSeeder{Catalog: c, Prune: prune},
	}
}
