package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		err   bool
	}{
		{"class", KindClass, false},
		{"Interface", KindInterface, false},
		{" trait ", KindTrait, false},
		{"enum", KindEnum, false},
		{"struct", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"User":              "User.php",
		"User.php":          "User.php",
		"User.PHP":          "User.php",
		"User.Php":          "User.php",
		"  User ":           "User.php",
		"User extends Base": "User.php",
		"User.inc":          "User.inc.php",
	}
	for in, want := range tests {
		assert.Equal(t, want, FileName(in), "FileName(%q)", in)
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "User", TypeName("User.php"))
	assert.Equal(t, "User", TypeName("User.PHP"))
	assert.Equal(t, "User", TypeName(" User implements Countable"))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("User"))
	for _, bad := range []string{"", "   ", "../User", `Sub\User`} {
		assert.Error(t, ValidateName(bad), "ValidateName(%q)", bad)
	}
}

func TestRender(t *testing.T) {
	got := Render(Options{Kind: KindClass, Name: "UserController", Namespace: `App\Http\Controllers`})
	assert.Equal(t, "<?php\n\nnamespace App\\Http\\Controllers;\n\nclass UserController\n{\n\n}\n", got)
}

func TestRender_strictTypes(t *testing.T) {
	got := Render(Options{Kind: KindEnum, Name: "Status.php", Namespace: "App", StrictTypes: true})
	assert.Equal(t, "<?php\n\ndeclare(strict_types=1);\n\nnamespace App;\n\nenum Status\n{\n\n}\n", got)
}

func TestRender_globalNamespace(t *testing.T) {
	got := Render(Options{Kind: KindTrait, Name: "Loggable"})
	assert.Equal(t, "<?php\n\ntrait Loggable\n{\n\n}\n", got)
}

func TestRender_upperCaseExtension(t *testing.T) {
	got := Render(Options{Kind: KindClass, Name: "Invoice.PHP", Namespace: "App"})
	assert.Contains(t, got, "\nclass Invoice\n")
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()

	path, err := Create(dir, Options{Kind: KindInterface, Name: "Repository", Namespace: "App"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Repository.php"), path)

	data, err := os.ReadFile(path) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, Render(Options{Kind: KindInterface, Name: "Repository", Namespace: "App"}), string(data))

	_, err = Create(dir, Options{Kind: KindClass, Name: "Repository"})
	assert.ErrorIs(t, err, ErrFileExists)
}

func TestCreate_upperCaseExtensionCollides(t *testing.T) {
	dir := t.TempDir()

	_, err := Create(dir, Options{Kind: KindClass, Name: "Order"})
	require.NoError(t, err)

	_, err = Create(dir, Options{Kind: KindClass, Name: "Order.PHP"})
	assert.ErrorIs(t, err, ErrFileExists)
}

func TestKind_Title(t *testing.T) {
	assert.Equal(t, "Interface", KindInterface.Title())
}
