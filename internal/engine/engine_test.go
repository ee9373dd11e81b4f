package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/internal/jconfig"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	cfg := jconfig.DefaultProject("test-project")
	eng, err := New(root, cfg, Hooks{}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })
	return eng
}

func TestNewRequiresName(t *testing.T) {
	_, err := New(t.TempDir(), jconfig.DefaultProject(""), Hooks{}, zerolog.Nop())
	require.Error(t, err)
}

func TestNewCreatesProjectDirectories(t *testing.T) {
	eng := newTestEngine(t)
	for _, d := range []string{"journal", "configs", "logs", "snapshots"} {
		require.DirExists(t, eng.Root+"/"+d)
	}
}
