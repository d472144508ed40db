package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_missingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoad_emptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.ComposerPath)
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("composer_path: backend/composer.json\nstrict_types: true\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "backend/composer.json", cfg.ComposerPath)
	assert.True(t, cfg.StrictTypes)
	assert.False(t, cfg.GitAdd)
}

func TestLoad_envOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("composer_path: from-file\nstrict_types: false\n"), 0600))
	t.Setenv("PHPCLASS_COMPOSER_PATH", "from-env")
	t.Setenv("PHPCLASS_STRICT_TYPES", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.ComposerPath)
	assert.True(t, cfg.StrictTypes)
}

func TestLoad_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("composer_path: [unclosed\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_directory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := Path(t.TempDir())
	want := &Config{ComposerPath: "app", StrictTypes: true, GitAdd: true}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
