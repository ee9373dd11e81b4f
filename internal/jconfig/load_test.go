package jconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDirWithoutConfigReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	p, err := LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), p.Name)
	assert.Equal(t, "journal", p.JournalDir)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal_config.toml")
	content := `name = "demo"
journal_dir = "a/journal"

[validation]
require_templates = true
validate_references = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, "a/journal", p.JournalDir)
	assert.True(t, p.Validation.RequireTemplates)
}

func TestLoadMissingNameFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal_config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`journal_dir = "x"`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFindPrefersTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "journal_config.toml"), []byte(`name="x"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "journal_config.json"), []byte(`{"name":"y"}`), 0o644))

	path, ok := Find(dir)
	require.True(t, ok)
	assert.Equal(t, "journal_config.toml", filepath.Base(path))
}
