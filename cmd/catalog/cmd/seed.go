package cmd

import (
	"fmt"

	"servi-search/internal/database/seeder"

	"github.com/spf13/cobra"
)

var prune bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a catalog file into the categories and category_tags tables",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&prune, "prune", false, "delete categories that are not in the catalog")
}

func runSeed(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	db, err := connectDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	r := seeder.Runner{Seeders: seeder.Defaults(c, prune)}
	if err := r.Run(cmd.Context(), db); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories (catalog %s)\n", c.Len(), c.Version())
	return nil
}
