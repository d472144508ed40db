package namespace

import (
	"errors"

	"github.com/fbkclanna/phpclass/internal/composer"
	"github.com/fbkclanna/phpclass/internal/workspace"
)

// ErrNotResolved reports that the manifest was read but no autoload rule
// claims the folder. Callers may fall back to the global namespace.
var ErrNotResolved = errors.New("the namespace could not be resolved")

// Resolve returns the namespace for folder. A manifest in the workspace root
// resolves its own directory to the global namespace ("") when no rule
// claims it.
func Resolve(folder string, loc workspace.Location, rules []composer.Rule) (string, error) {
	m, err := best(folder, loc, rules)
	if err != nil || m == nil {
		return "", err
	}
	return m.Namespace(), nil
}

// best picks the winning candidate. A nil match with a nil error means the
// folder is the unclaimed manifest directory at the workspace root.
func best(folder string, loc workspace.Location, rules []composer.Rule) (*Match, error) {
	candidates := Candidates(folder, loc, rules)
	if len(candidates) > 0 {
		return &candidates[0], nil
	}
	if loc.AtRoot && workspace.DirPath(folder) == loc.Dir {
		return nil, nil
	}
	return nil, ErrNotResolved
}
