// Copyright © 2025 The ruff authors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	writeFile(t, path, `
[tool.ruff]
select = ["PYI028", "PYI024"]
ignore = ["PYI021"]
exclude = ["build/*"]
target-version = "py311"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"PYI028", "PYI024"}, cfg.Select)
	assert.Equal(t, []string{"PYI021"}, cfg.Ignore)
	assert.Equal(t, []string{"build/*"}, cfg.Exclude)
	assert.Equal(t, "py311", cfg.TargetVersion)
}

func TestLoad_NoRuffTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	writeFile(t, path, `
[tool.other]
key = "value"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Select)
	assert.Empty(t, cfg.Ignore)
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	writeFile(t, path, "[tool.ruff\nselect = [")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestDiscover_SameDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, Filename), "[tool.ruff]\nselect = [\"PYI028\"]\n")
	cfg, path, err := Discover(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, filepath.Join(dir, Filename), path)
	assert.Equal(t, []string{"PYI028"}, cfg.Select)
}

func TestDiscover_ParentDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, Filename), "[tool.ruff]\nignore = [\"UP013\"]\n")
	nested := filepath.Join(root, "src", "stubs")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, path, err := Discover(nested)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, filepath.Join(root, Filename), path)
	assert.Equal(t, []string{"UP013"}, cfg.Ignore)
}

func TestDiscover_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, Filename), "[tool.ruff]\nselect = [\"PYI021\"]\n")
	nested := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	writeFile(t, filepath.Join(nested, Filename), "[tool.ruff]\nselect = [\"PYI028\"]\n")

	cfg, path, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nested, Filename), path)
	assert.Equal(t, []string{"PYI028"}, cfg.Select)
}

func TestDiscover_NotFound(t *testing.T) {
	dir := t.TempDir()
	cfg, path, err := Discover(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Empty(t, path)
}
