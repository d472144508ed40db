package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheck_pass(t *testing.T) {
	root := setupProject(t, map[string]string{
		"src/Http/Controllers/HomeController.php": "<?php\n\nnamespace App\\Http\\Controllers;\n\nclass HomeController {}\n",
		"src/Models/User.php":                     "<?php\nnamespace App\\Models;\nclass User {}\n",
		"docs/example.php":                        "<?php\nnamespace Whatever;\n",
		"vendor/acme/lib/Foo.php":                 "<?php\nnamespace Wrong;\n",
	})

	out, _, err := execute(t, "--root", root, "check", root)
	require.NoError(t, err, out)
	assert.Contains(t, out, "[3/3]", "vendor should be skipped")
	assert.Contains(t, out, "skip")
	assert.Contains(t, out, "example.php")
}

func TestRunCheck_mismatch(t *testing.T) {
	root := setupProject(t, map[string]string{
		"src/Models/User.php":  "<?php\nnamespace App\\Model;\nclass User {}\n",
		"src/Models/Order.php": "<?php\nclass Order {}\n",
		"src/Kernel.php":       "<?php\nnamespace App;\n",
	})

	out, _, err := execute(t, "--root", root, "check", join(root, "src"))
	require.Error(t, err, out)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Contains(t, out, `declared App\Model, expected App\Models`)
	assert.Contains(t, out, `declared (global), expected App\Models`)
}

func TestRunCheck_noFiles(t *testing.T) {
	root := setupProject(t, nil)

	out, _, err := execute(t, "--root", root, "check", join(root, "src"))
	require.NoError(t, err)
	assert.Contains(t, out, "No PHP files found.")
}
