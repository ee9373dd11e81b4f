package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// cliConfigName/Type is the CLI's own settings file — distinct from a
// project's journal_config.toml, which internal/jconfig loads per
// project root. This one carries cross-project CLI defaults: the
// project root to operate against when --root isn't given, and the
// default output mode.
const (
	cliConfigName = "journalrc"
	cliConfigType = "yaml"
)

// loadCLIConfig reads ~/.config/journal/journalrc.yaml (and the current
// directory, for a repo-local override) via Viper, binding the
// JOURNAL_ROOT and JOURNAL_JSON environment variables over it. A missing
// file is not an error — Viper's defaults stand in.
func loadCLIConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("journal")
	v.AutomaticEnv()
	v.SetDefault("root", "")
	v.SetDefault("json", false)

	v.SetConfigName(cliConfigName)
	v.SetConfigType(cliConfigType)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "journal"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read cli config: %w", err)
	}
	return v, nil
}

// applyCLIConfigDefaults overlays unset --root/--json flags with the
// loaded CLI config's values, so the flag > env > file precedence the
// rest of this package follows holds here too.
func applyCLIConfigDefaults(v *viper.Viper) {
	if flags.root == "" {
		flags.root = v.GetString("root")
	}
	if !flags.jsonMode {
		flags.jsonMode = v.GetBool("json")
	}
}
