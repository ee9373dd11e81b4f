// Package cli implements the journal command-line interface: a thin
// cobra front end over internal/engine, matching the exit-code and
// output-mode contract spec.md §6 defines for CLI callers.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	root     string
	jsonMode bool
}

var flags rootFlags

// exitCodeErr carries a CLI exit code without itself being a user-facing
// message — the message has already been written to stderr by the time
// this is returned.
type exitCodeErr struct{ code int }

func (e *exitCodeErr) Error() string { return fmt.Sprintf("exit %d", e.code) }

// fail prints msg to stderr and returns an error Execute maps to code.
func fail(code int, format string, args ...any) error {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return &exitCodeErr{code: code}
}

// NewRootCmd creates the top-level "journal" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "journal",
		Short: "An append-only lab journal for software and analysis projects",
		Long: "journal records narrative entries, amendments, config archives, preserved\n" +
			"logs, and state snapshots as append-only markdown, backed by a rebuildable\n" +
			"SQLite index for queries and search.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadCLIConfig()
			if err != nil {
				return fail(2, "load CLI config: %s", err)
			}
			applyCLIConfigDefaults(v)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.root, "root", "", "project root (default: $JOURNAL_ROOT, then journalrc.yaml, then cwd)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newActiveCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newRebuildIndexCmd())

	return root
}

// Execute runs the root command and exits with the exit code spec.md §6
// assigns: 0 success, 1 general error, 2 configuration error, 3 not
// found, 4 invalid argument.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		var ec *exitCodeErr
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		os.Exit(1)
	}
}

// newLogger builds the CLI's zerolog.Logger: human-readable console
// output by default, plain JSON when --json is set, matching the rest of
// the output mode's formatting.
func newLogger() zerolog.Logger {
	if flags.jsonMode {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
