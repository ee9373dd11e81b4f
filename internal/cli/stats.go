package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Overall entry counts and date coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			s, err := eng.Stats()
			if err != nil {
				return exitCodeForErr(err)
			}

			if flags.jsonMode {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "entries:     %d\namendments:  %d\nauthors:     %d\ntools:       %d\ndate range:  %s .. %s\n",
				s.TotalEntries, s.TotalAmendments, s.DistinctAuthors, s.DistinctTools, s.EarliestDate, s.LatestDate)
			return nil
		},
	}
}
