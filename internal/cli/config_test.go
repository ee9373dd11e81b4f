package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfigMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })

	v, err := loadCLIConfig()
	require.NoError(t, err)
	assert.Equal(t, "", v.GetString("root"))
	assert.False(t, v.GetBool("json"))
}

func TestLoadCLIConfigReadsRepoLocalFile(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "journalrc.yaml"), []byte("root: /tmp/myproject\njson: true\n"), 0o644))

	v, err := loadCLIConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/myproject", v.GetString("root"))
	assert.True(t, v.GetBool("json"))
}

func TestApplyCLIConfigDefaultsDoesNotOverrideExplicitFlags(t *testing.T) {
	defer func() { flags = rootFlags{} }()
	flags = rootFlags{root: "/explicit/root", jsonMode: true}

	v := viper.New()
	v.Set("root", "/from/config")
	v.Set("json", false)

	applyCLIConfigDefaults(v)
	assert.Equal(t, "/explicit/root", flags.root)
	assert.True(t, flags.jsonMode)
}

func TestApplyCLIConfigDefaultsFillsUnsetFlags(t *testing.T) {
	defer func() { flags = rootFlags{} }()
	flags = rootFlags{}

	v := viper.New()
	v.Set("root", "/from/config")
	v.Set("json", true)

	applyCLIConfigDefaults(v)
	assert.Equal(t, "/from/config", flags.root)
	assert.True(t, flags.jsonMode)
}
