package workspace

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fbkclanna/phpclass/internal/composer"
)

// Prober reports whether a path exists. Implementations must not fail on
// missing paths.
type Prober interface {
	Exists(path string) bool
}

// OSProber probes the local filesystem.
type OSProber struct{}

// Exists implements Prober.
func (OSProber) Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// Location is where the governing manifest was found.
type Location struct {
	// Dir is absolute, slash-separated and always ends with "/".
	Dir   string `json:"dir"`
	File  string `json:"file"`
	Found bool   `json:"found"`
	// AtRoot reports whether Dir is the workspace root. Without a root the
	// searched folder stands in for it.
	AtRoot bool `json:"at_root"`
}

// Locate finds the manifest for folder. A non-empty override wins over the
// upward search; relative overrides are resolved against root.
func Locate(folder, root, override string, p Prober) Location {
	loc := search(folder, root, override, p)
	if loc.Found {
		boundary := root
		if boundary == "" {
			boundary = folder
		}
		loc.AtRoot = loc.Dir == DirPath(boundary)
	}
	return loc
}

func search(folder, root, override string, p Prober) Location {
	if override != "" {
		return locateOverride(root, override, p)
	}
	for _, dir := range Ancestors(folder, root) {
		file := filepath.Join(dir, composer.FileName)
		if p.Exists(file) {
			return newLocation(file)
		}
	}
	return Location{}
}

func locateOverride(root, override string, p Prober) Location {
	resolved := override
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(root, resolved)
	}
	if abs, err := filepath.Abs(resolved); err == nil {
		resolved = abs
	}
	if strings.EqualFold(filepath.Ext(resolved), ".json") {
		return newLocation(resolved)
	}
	file := filepath.Join(resolved, composer.FileName)
	if !p.Exists(file) {
		return Location{}
	}
	return newLocation(file)
}

func newLocation(file string) Location {
	return Location{
		Dir:   DirPath(filepath.Dir(file)),
		File:  file,
		Found: true,
	}
}

// Ancestors lists dir and each parent up to and including boundary.
// With an empty boundary, or a dir outside it, only dir is returned.
func Ancestors(dir, boundary string) []string {
	dir = filepath.Clean(dir)
	if boundary == "" {
		return []string{dir}
	}
	boundary = filepath.Clean(boundary)
	rel, err := filepath.Rel(boundary, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return []string{dir}
	}

	dirs := []string{dir}
	for dir != boundary {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
		dirs = append(dirs, dir)
	}
	return dirs
}

// DirPath normalizes a directory to slash separators with exactly one
// trailing slash.
func DirPath(dir string) string {
	p := path.Clean(filepath.ToSlash(dir))
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}
