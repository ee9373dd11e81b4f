package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/journal/internal/jconfig"
)

func TestStateSnapshotWritesJSON(t *testing.T) {
	m, root := newTestManager(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "build.toml"), []byte("x=1"), 0o644))

	project := jconfig.DefaultProject("demo")
	snap, err := m.StateSnapshot(project, root, "pre-release", true, false, false, false, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "build.toml", keysOf(snap.Configs)[0])
}

func TestStateSnapshotFiltersSecretEnvVars(t *testing.T) {
	m, _ := newTestManager(t)
	t.Setenv("MY_SECRET_TOKEN", "shh")
	t.Setenv("PLAIN_VAR", "visible")

	project := jconfig.DefaultProject("demo")
	snap, err := m.StateSnapshot(project, t.TempDir(), "check", false, true, false, false, "", nil)
	require.NoError(t, err)

	_, hasSecret := snap.Environment["MY_SECRET_TOKEN"]
	_, hasPlain := snap.Environment["PLAIN_VAR"]
	assert.False(t, hasSecret)
	assert.True(t, hasPlain)
}

func TestStateSnapshotRequiresBuildDirWhenListingRequested(t *testing.T) {
	m, root := newTestManager(t)
	project := jconfig.DefaultProject("demo")
	_, err := m.StateSnapshot(project, root, "check", false, false, false, true, "", nil)
	assert.Error(t, err)
}

func keysOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
