package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/journal/internal/engine"
)

func newSearchCmd() *cobra.Command {
	var author, dateFrom, dateTo, format string
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Legacy full-text search over journal entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			var query string
			if len(args) > 0 {
				query = args[0]
			}

			result, err := eng.Search(engine.SearchParams{
				Query: query, Author: author, DateFrom: dateFrom, DateTo: dateTo,
			})
			if err != nil {
				return exitCodeForErr(err)
			}
			return writeEntries(cmd.OutOrStdout(), result.Entries, format)
		},
	}
	cmd.Flags().StringVar(&author, "author", "", "filter by author")
	cmd.Flags().StringVar(&dateFrom, "date-from", "", "inclusive start date")
	cmd.Flags().StringVar(&dateTo, "date-to", "", "inclusive end date")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv, compact")
	return cmd
}
