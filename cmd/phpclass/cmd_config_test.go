package main

import (
	"testing"

	"github.com/fbkclanna/phpclass/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfigInit(t *testing.T) {
	root := setupProject(t, nil)

	_, _, err := execute(t, "--root", root, "--composer", "composer.json", "config", "init", "--strict-types")
	require.NoError(t, err)

	cfg, err := config.Load(config.Path(root))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{ComposerPath: "composer.json", StrictTypes: true}, cfg)

	_, _, err = execute(t, "--root", root, "config", "init")
	assert.Error(t, err, "config exists and --force is not set")

	_, _, err = execute(t, "--root", root, "config", "init", "--force", "--strict-types=false")
	require.NoError(t, err)

	cfg, err = config.Load(config.Path(root))
	require.NoError(t, err)
	assert.False(t, cfg.StrictTypes)
	assert.Equal(t, "composer.json", cfg.ComposerPath, "existing settings should be kept")
}

func TestRunConfigShow(t *testing.T) {
	root := setupProject(t, map[string]string{".phpclass.yaml": "git_add: true\n"})

	out, _, err := execute(t, "--root", root, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "git_add: true")
}
