package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/journal/internal/index"
)

func newQueryCmd() *cobra.Command {
	var (
		author, outcome, tool, dateFrom, dateTo, textSearch, orderBy, format string
		limit, offset                                                       int
		orderDesc                                                           bool
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filtered, paginated retrieval of journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			filters := map[string]string{}
			if author != "" {
				filters["author"] = author
			}
			if outcome != "" {
				filters["outcome"] = outcome
			}
			if tool != "" {
				filters["tool"] = tool
			}

			result, err := eng.Query(index.QueryParams{
				Filters: filters, TextSearch: textSearch,
				DateFrom: dateFrom, DateTo: dateTo,
				Limit: limit, Offset: offset,
				OrderBy: orderBy, OrderDesc: orderDesc,
			})
			if err != nil {
				return exitCodeForErr(err)
			}
			return writeEntries(cmd.OutOrStdout(), result.Entries, format)
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "filter by author")
	cmd.Flags().StringVar(&outcome, "outcome", "", "filter by outcome")
	cmd.Flags().StringVar(&tool, "tool", "", "filter by tool")
	cmd.Flags().StringVar(&dateFrom, "date-from", "", "inclusive start date (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&dateTo, "date-to", "", "inclusive end date (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&textSearch, "text", "", "full-text search term")
	cmd.Flags().StringVar(&orderBy, "order-by", "timestamp", "sort column: timestamp, entry_id, author, outcome, duration_ms")
	cmd.Flags().BoolVar(&orderDesc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&limit, "limit", 100, "max rows")
	cmd.Flags().IntVar(&offset, "offset", 0, "row offset")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv, compact")
	return cmd
}
