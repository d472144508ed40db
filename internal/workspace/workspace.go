package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/fbkclanna/phpclass/internal/composer"
)

// ErrManifestNotFound reports that no composer.json governs the folder.
var ErrManifestNotFound = errors.New("the composer.json file could not be found")

// Context holds the resolved paths and loaded manifest for one folder.
// It is built fresh per call and never cached.
type Context struct {
	Root     string
	Folder   string
	Location Location
	Manifest *composer.Manifest
}

// Load locates and parses the manifest governing folder.
func Load(folder, root, override string, p Prober) (*Context, error) {
	folder, err := filepath.Abs(folder)
	if err != nil {
		return nil, fmt.Errorf("resolving folder: %w", err)
	}
	if root != "" {
		if root, err = filepath.Abs(root); err != nil {
			return nil, fmt.Errorf("resolving workspace root: %w", err)
		}
	}

	loc := Locate(folder, root, override, p)
	if !loc.Found {
		return nil, fmt.Errorf("%w (searched from %s)", ErrManifestNotFound, folder)
	}

	m, err := composer.Load(loc.File)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, loc.File)
	}
	if err != nil {
		return nil, err
	}

	return &Context{
		Root:     root,
		Folder:   folder,
		Location: loc,
		Manifest: m,
	}, nil
}

// Rules returns the autoload rules declared by the loaded manifest.
func (c *Context) Rules() []composer.Rule {
	return composer.Collect(c.Manifest)
}
