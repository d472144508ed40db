package composer

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`{
  "name": "acme/shop",
  "autoload": {
    "psr-4": {"App\\": "src/", "Lib\\": ["lib/", "vendor-lib/"]},
    "psr-0": {"Legacy_": "legacy/"}
  },
  "autoload-dev": {
    "psr-4": {"Tests\\": "tests/"}
  }
}`)
	m, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "acme/shop", m.Name)
	assert.Equal(t, Paths{"src/"}, m.Autoload.PSR4["App\\"])
	assert.Equal(t, Paths{"lib/", "vendor-lib/"}, m.Autoload.PSR4["Lib\\"])
	assert.Equal(t, Paths{"legacy/"}, m.Autoload.PSR0["Legacy_"])
	assert.Len(t, m.AutoloadDev.PSR4, 1)
}

func TestParse_missingSections(t *testing.T) {
	m, err := Parse([]byte(`{"name": "acme/empty"}`))
	require.NoError(t, err)
	assert.Empty(t, Collect(m))
}

func TestParse_emptyArraySections(t *testing.T) {
	m, err := Parse([]byte(`{"autoload": [], "autoload-dev": {"psr-4": [], "psr-0": null}}`))
	require.NoError(t, err)
	assert.Empty(t, Collect(m))
}

func TestParse_malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `{"autoload": {`},
		{"path type", `{"autoload": {"psr-4": {"App\\": 42}}}`},
		{"section type", `{"autoload": {"psr-4": "src"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrUnreadable)
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrUnreadable)
}

func TestLoad_directory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"autoload":{"psr-4":{"App\\":"src/"}}}`), 0600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Autoload.PSR4, 1)
}

func TestCollect(t *testing.T) {
	m := &Manifest{
		Autoload: Autoload{
			PSR4: map[string]Paths{
				"Lib\\": {"lib/", "lib2/"},
				"App\\": {"src/"},
			},
			PSR0: map[string]Paths{"": {"legacy/"}},
		},
		AutoloadDev: Autoload{
			PSR4: map[string]Paths{"Tests\\": {"tests/"}},
		},
	}

	want := []Rule{
		{Prefix: "App\\", Path: "src/", Kind: PSR4},
		{Prefix: "Lib\\", Path: "lib/", Kind: PSR4},
		{Prefix: "Lib\\", Path: "lib2/", Kind: PSR4},
		{Prefix: "", Path: "legacy/", Kind: PSR0},
		{Prefix: "Tests\\", Path: "tests/", Kind: PSR4, Dev: true},
	}
	assert.Equal(t, want, Collect(m))
}

func TestCollect_nil(t *testing.T) {
	assert.Nil(t, Collect(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "psr-4", PSR4.String())
	assert.Equal(t, "psr-0", PSR0.String())
}

func TestKind_UnmarshalText(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("psr-4")))
	assert.Equal(t, PSR4, k)
	require.NoError(t, k.UnmarshalText([]byte("psr-0")))
	assert.Equal(t, PSR0, k)
	assert.Error(t, k.UnmarshalText([]byte("classmap")))
}
