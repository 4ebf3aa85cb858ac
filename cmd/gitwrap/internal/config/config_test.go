//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/tmp/nonexistent/config.yaml")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_remote: upstream\n"), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "upstream", cfg.DefaultRemote)
	assert.Empty(t, cfg.GitPath)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_remote: [\n"), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InaccessibleGitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("git_path: /nonexistent/git\n"), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigWithFallback(t *testing.T) {
	cfg := LoadConfigWithFallback("/tmp/nonexistent/config.yaml")
	require.NotNil(t, cfg)
	assert.Equal(t, "origin", cfg.DefaultRemote)
}

func TestValidate_FillsDefaultRemote(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "origin", cfg.DefaultRemote)
}
