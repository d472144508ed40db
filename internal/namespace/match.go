package namespace

import (
	"path"
	"slices"
	"strings"

	"github.com/fbkclanna/phpclass/internal/composer"
	"github.com/fbkclanna/phpclass/internal/workspace"
)

// Separator separates namespace segments.
const Separator = `\`

// Match is an autoload rule that claims a folder.
type Match struct {
	Rule composer.Rule `json:"rule"`
	// Dir is the claimed directory: absolute, slash-separated, "/"-terminated.
	Dir string `json:"dir"`
	// Prefix is empty or ends with exactly one Separator.
	Prefix      string `json:"prefix"`
	Specificity int    `json:"specificity"`
	Priority    int    `json:"priority"`

	rest []string
}

// Namespace rewrites the matched folder into a namespace.
func (m *Match) Namespace() string {
	return strings.TrimSuffix(m.Prefix+strings.Join(m.rest, Separator), Separator)
}

// Claim computes the directory a rule is responsible for and the namespace
// prefix it contributes. For PSR-0 the prefix segments are themselves
// subdirectories of the rule's base path.
func Claim(loc workspace.Location, r composer.Rule) (dir, prefix string) {
	base := strings.ReplaceAll(r.Path, `\`, "/")
	if !path.IsAbs(base) {
		base = path.Join(loc.Dir, base)
	}

	var segs []string
	switch r.Kind {
	case composer.PSR0:
		segs = psr0Segments(r.Prefix)
		base = path.Join(append([]string{base}, segs...)...)
	default:
		segs = splitNonEmpty(strings.TrimSpace(r.Prefix), Separator)
	}

	if len(segs) > 0 {
		prefix = strings.Join(segs, Separator) + Separator
	}
	return workspace.DirPath(base), prefix
}

// psr0Segments splits a PSR-0 prefix into directory segments. A prefix not
// ending in a namespace separator ends in a class-name part, where
// underscores also separate directories ("Vendor_" lives in "Vendor/").
func psr0Segments(prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if strings.HasSuffix(prefix, Separator) {
		return splitNonEmpty(prefix, Separator)
	}
	ns, class := "", prefix
	if i := strings.LastIndex(prefix, Separator); i >= 0 {
		ns, class = prefix[:i], prefix[i+1:]
	}
	return append(splitNonEmpty(ns, Separator), splitNonEmpty(class, "_")...)
}

// Candidates returns the rules claiming folder, best first. folder must be
// absolute.
func Candidates(folder string, loc workspace.Location, rules []composer.Rule) []Match {
	target := splitNonEmpty(workspace.DirPath(folder), "/")

	var matches []Match
	for _, r := range rules {
		dir, prefix := Claim(loc, r)
		rest, ok := within(target, splitNonEmpty(dir, "/"))
		if !ok {
			continue
		}
		matches = append(matches, Match{
			Rule:        r,
			Dir:         dir,
			Prefix:      prefix,
			Specificity: len(dir),
			Priority:    priority(r.Kind),
			rest:        rest,
		})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		return b.Specificity - a.Specificity
	})
	return matches
}

func priority(k composer.Kind) int {
	if k == composer.PSR4 {
		return 1
	}
	return 0
}

// within reports whether folder equals or is nested in dir, comparing whole
// path segments, and returns the segments of folder below dir.
func within(folder, dir []string) ([]string, bool) {
	if len(folder) < len(dir) {
		return nil, false
	}
	for i := range dir {
		if folder[i] != dir[i] {
			return nil, false
		}
	}
	return folder[len(dir):], true
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
