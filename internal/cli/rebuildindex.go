package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRebuildIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild-index",
		Short: "Reparse all daily journal files into the secondary index",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			result, err := eng.RebuildIndex(func(filePath string, ferr error) {
				if ferr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", filePath, ferr)
				}
			})
			if err != nil {
				return exitCodeForErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "files processed: %d\nentries indexed: %d\nerrors:          %d\n",
				result.FilesProcessed, result.EntriesIndexed, result.Errors)
			return nil
		},
	}
}
