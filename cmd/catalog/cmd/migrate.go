package cmd

import (
	"servi-search/internal/database/migration"

	"github.com/spf13/cobra"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "", "migrations directory (default: bundled migrations)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := connectDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	return migration.Runner{Dir: migrationsDir, Logger: cliLogger()}.Run(cmd.Context(), db.SQLDB())
}
