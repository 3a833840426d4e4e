package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse and validate a catalog file",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "catalog %s: %d categories\n", c.Version(), c.Len())
	for _, col := range c.Collisions() {
		fmt.Fprintf(out, "warning: synonym %q kept by category %d, dropped from %d\n",
			col.Keyword, col.KeptCategoryID, col.DroppedCategoryID)
	}
	return nil
}
