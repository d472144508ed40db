package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/phpclass/internal/testutil"
)

const testManifest = `{
  "name": "acme/shop",
  "autoload": {
    "psr-4": {"App\\": "src/", "App\\Models\\": "src/Models"},
    "psr-0": {"": "legacy/"}
  },
  "autoload-dev": {
    "psr-4": {"Tests\\": "tests/"}
  }
}`

// setupProject creates a PHP project with a composer.json at its root.
func setupProject(t *testing.T, extra map[string]string) string {
	t.Helper()
	files := map[string]string{
		"composer.json":         testManifest,
		"src/Http/Controllers/": "",
		"src/Models/":           "",
		"legacy/Billing/":       "",
		"tests/Unit/":           "",
		"docs/":                 "",
	}
	for k, v := range extra {
		files[k] = v
	}
	return testutil.WriteProject(t, files)
}

// execute runs the root command and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func join(root string, elem ...string) string {
	return filepath.Join(append([]string{root}, elem...)...)
}
