package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"servi-search/internal/catalog"
	"servi-search/internal/config"
	"servi-search/internal/database"
	dbpostgres "servi-search/internal/database/postgres"
	"servi-search/internal/search"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var catalogPath string

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Category catalog tooling",
	Long:          "Validate and query category catalog files, apply migrations and seed the catalog tables.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "file", "f", "", "catalog YAML file (default: bundled catalog)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

func loadCatalog(ctx context.Context) (*search.Catalog, error) {
	return catalog.FileSource{Path: catalogPath}.Load(ctx)
}

func cliLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

func connectDB(ctx context.Context) (database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.Database.Configured() {
		return nil, fmt.Errorf("DB_HOST and DB_NAME must be set")
	}
	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return dbpostgres.Connect(connCtx, cfg.Database)
}
