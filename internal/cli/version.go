package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/journal/pkg/version"
)

const modulePath = "github.com/mesh-intelligence/journal"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the journal version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "journal v%s\nmodule: %s\n", version.Version, modulePath)
			return nil
		},
	}
}
