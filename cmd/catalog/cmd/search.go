package cmd

import (
	"fmt"
	"strings"

	"servi-search/internal/search"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a category search against a catalog file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	res := search.Search(strings.Join(args, " "), c)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Categorías")
	if len(res.Direct) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, cat := range res.Direct {
		fmt.Fprintf(out, "  %3d  %s\n", cat.ID, cat.Name)
	}

	fmt.Fprintln(out, "Categorías relacionadas")
	if len(res.Synonyms) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, m := range res.Synonyms {
		fmt.Fprintf(out, "  %3d  %s (%s)\n", m.Category.ID, m.Category.Name, m.MatchedKeyword)
	}
	return nil
}
