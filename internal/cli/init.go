package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/journal/internal/engine"
	"github.com/mesh-intelligence/journal/internal/jconfig"
	"github.com/mesh-intelligence/journal/internal/paths"
)

func newInitCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a journal project",
		Long:  "Create the journal/configs/logs/snapshots directories and a default journal_config.toml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, name)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name (default: root directory's base name)")
	return cmd
}

func runInit(cmd *cobra.Command, name string) error {
	root, err := paths.ResolveRoot(flags.root)
	if err != nil {
		return fail(2, "resolve project root: %s", err)
	}

	if name == "" {
		name = filepath.Base(root)
	}
	cfg := jconfig.DefaultProject(name)

	if err := engine.Init(root, cfg); err != nil {
		return exitCodeForErr(err)
	}

	configPath := filepath.Join(root, "journal_config.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		f, err := os.Create(configPath)
		if err != nil {
			return fail(2, "create config file: %s", err)
		}
		defer f.Close()
		if err := toml.NewEncoder(f).Encode(cfg); err != nil {
			return fail(2, "write config file: %s", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "journal project %q initialized at %s\n", cfg.Name, root)
	return nil
}
