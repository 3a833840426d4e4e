// catalog is the operator tool for the category catalog: validate and query
// catalog files, apply migrations and seed the catalog tables.
package main

import (
	"os"

	"servi-search/cmd/catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
