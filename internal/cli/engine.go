package cli

import (
	"github.com/mesh-intelligence/journal/internal/engine"
	"github.com/mesh-intelligence/journal/internal/jconfig"
	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/internal/paths"
)

// openEngine resolves the project root, loads its declarative config, and
// constructs an Engine. Config resolution failures map to exit code 2
// (configuration error); everything past that point is an engine error
// mapped through journalerr.ExitCode by the caller.
func openEngine() (*engine.Engine, error) {
	root, err := paths.ResolveRoot(flags.root)
	if err != nil {
		return nil, fail(2, "resolve project root: %s", err)
	}

	cfg, err := jconfig.LoadFromDir(root)
	if err != nil {
		return nil, fail(2, "load project config: %s", err)
	}

	eng, err := engine.New(root, cfg, engine.Hooks{}, newLogger())
	if err != nil {
		return nil, fail(2, "construct engine: %s", err)
	}
	return eng, nil
}

// exitCodeForErr maps an engine error to the CLI's exit-code contract and
// writes its one-line message plus kind to stderr.
func exitCodeForErr(err error) error {
	if err == nil {
		return nil
	}
	kind := journalerr.KindOf(err)
	if kind == "" {
		return fail(1, "error: %s", err)
	}
	return fail(journalerr.ExitCode(err), "error: %s: %s", kind, err)
}
