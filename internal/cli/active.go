package cli

import (
	"github.com/spf13/cobra"
)

func newActiveCmd() *cobra.Command {
	var thresholdMs int64
	var tool, format string
	cmd := &cobra.Command{
		Use:   "active",
		Short: "Entries whose duration meets a threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			entries, err := eng.Active(thresholdMs, tool)
			if err != nil {
				return exitCodeForErr(err)
			}
			return writeEntries(cmd.OutOrStdout(), entries, format)
		},
	}
	cmd.Flags().Int64Var(&thresholdMs, "threshold-ms", 0, "minimum duration_ms")
	cmd.Flags().StringVar(&tool, "tool", "", "restrict to one tool")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv, compact")
	return cmd
}
