// Package jconfig loads the declarative project configuration record the
// engine is constructed from. Loading is source-format neutral at the
// engine boundary; this package supplies the TOML/JSON tiers actually
// wired into the CLI. A dynamic script-based config tier (as the Python
// original supports) has no safe Go equivalent and is intentionally not
// implemented — callers wire hooks and custom tools in code instead.
package jconfig

// VersionCommand probes one tool's version string for state snapshots.
type VersionCommand struct {
	Name          string `toml:"name" json:"name"`
	Command       string `toml:"command" json:"command"`
	CaptureRegex  string `toml:"capture_regex,omitempty" json:"capture_regex,omitempty"`
}

// TemplateConfig declares one named entry template.
type TemplateConfig struct {
	Name           string   `toml:"name" json:"name"`
	Description    string   `toml:"description,omitempty" json:"description,omitempty"`
	RequiredFields []string `toml:"required_fields,omitempty" json:"required_fields,omitempty"`
	OptionalFields []string `toml:"optional_fields,omitempty" json:"optional_fields,omitempty"`
	DefaultOutcome string   `toml:"default_outcome,omitempty" json:"default_outcome,omitempty"`
}

// Validation groups the engine's append-time validation toggles.
type Validation struct {
	RequireTemplates   bool  `toml:"require_templates" json:"require_templates"`
	ValidateReferences bool  `toml:"validate_references" json:"validate_references"`
	RequireOutcome     bool  `toml:"require_outcome" json:"require_outcome"`
	MaxEntrySize       int64 `toml:"max_entry_size,omitempty" json:"max_entry_size,omitempty"`
}

// Project is the full declarative configuration record the engine is
// constructed from.
type Project struct {
	Name string `toml:"name" json:"name"`

	JournalDir    string `toml:"journal_dir,omitempty" json:"journal_dir,omitempty"`
	ConfigsDir    string `toml:"configs_dir,omitempty" json:"configs_dir,omitempty"`
	LogsDir       string `toml:"logs_dir,omitempty" json:"logs_dir,omitempty"`
	SnapshotsDir  string `toml:"snapshots_dir,omitempty" json:"snapshots_dir,omitempty"`

	ConfigPatterns []string `toml:"config_patterns,omitempty" json:"config_patterns,omitempty"`
	LogCategories  []string `toml:"log_categories,omitempty" json:"log_categories,omitempty"`

	EnvIncludePatterns []string `toml:"env_include_patterns,omitempty" json:"env_include_patterns,omitempty"`
	EnvExcludePatterns []string `toml:"env_exclude_patterns,omitempty" json:"env_exclude_patterns,omitempty"`

	VersionCommands []VersionCommand  `toml:"version_commands,omitempty" json:"version_commands,omitempty"`
	Templates        []TemplateConfig `toml:"templates,omitempty" json:"templates,omitempty"`

	Validation Validation `toml:"validation" json:"validation"`

	// Hooks are not represented here: they are supplied by the embedding
	// Go program as an engine.Hooks value at engine construction time, not
	// loaded from this record.
}

// defaultEnvExcludePatterns covers common secret-bearing environment
// variable name shapes so state_snapshot does not leak credentials by
// default.
var defaultEnvExcludePatterns = []string{
	"(?i).*SECRET.*", "(?i).*PASSWORD.*", "(?i).*TOKEN.*", "(?i).*_KEY$",
	"(?i)^AWS_.*", "(?i).*CREDENTIAL.*", "(?i).*API_KEY.*",
}

// DefaultProject returns a Project with the standard four-directory
// layout and the built-in secret-pattern environment exclusions.
func DefaultProject(name string) *Project {
	return &Project{
		Name:               name,
		JournalDir:         "journal",
		ConfigsDir:         "configs",
		LogsDir:            "logs",
		SnapshotsDir:       "snapshots",
		ConfigPatterns:     []string{"*.toml", "*.json", "*.yaml", "*.yml"},
		LogCategories:      []string{"build", "test", "deploy"},
		EnvExcludePatterns: defaultEnvExcludePatterns,
		Validation: Validation{
			ValidateReferences: true,
		},
	}
}
