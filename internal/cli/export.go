package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/journal/internal/index"
)

func newExportCmd() *cobra.Command {
	var dateFrom, dateTo, format, out string
	var limit int
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Bulk-export journal entries in a fixed format",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			result, err := eng.Query(index.QueryParams{
				DateFrom: dateFrom, DateTo: dateTo,
				OrderBy: "timestamp", OrderDesc: false, Limit: limit,
			})
			if err != nil {
				return exitCodeForErr(err)
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fail(1, "create export file: %s", err)
				}
				defer f.Close()
				w = f
			}
			return writeEntries(w, result.Entries, format)
		},
	}
	cmd.Flags().StringVar(&dateFrom, "date-from", "", "inclusive start date")
	cmd.Flags().StringVar(&dateTo, "date-to", "", "inclusive end date")
	cmd.Flags().StringVar(&format, "format", "jsonl", "output format: table, json, jsonl, csv, compact")
	cmd.Flags().StringVar(&out, "out", "", "destination file (default: stdout)")
	cmd.Flags().IntVar(&limit, "limit", 1000, "max rows")
	return cmd
}
