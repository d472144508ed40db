package composer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// ErrUnreadable reports a manifest that exists but cannot be read or decoded.
var ErrUnreadable = errors.New("the composer.json file could not be read")

// Load reads and parses a composer.json file. A missing file is reported
// as fs.ErrNotExist rather than ErrUnreadable.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the located manifest
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes composer.json content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: parsing JSON: %w", ErrUnreadable, err)
	}
	return &m, nil
}

// Collect flattens the production and dev autoload sections into rules.
// Production rules come before dev rules and PSR-4 before PSR-0; prefixes
// are sorted so the output is stable across calls.
func Collect(m *Manifest) []Rule {
	if m == nil {
		return nil
	}
	var rules []Rule
	rules = appendRules(rules, m.Autoload.PSR4, PSR4, false)
	rules = appendRules(rules, m.Autoload.PSR0, PSR0, false)
	rules = appendRules(rules, m.AutoloadDev.PSR4, PSR4, true)
	rules = appendRules(rules, m.AutoloadDev.PSR0, PSR0, true)
	return rules
}

func appendRules(rules []Rule, mapping map[string]Paths, kind Kind, dev bool) []Rule {
	prefixes := make([]string, 0, len(mapping))
	for p := range mapping {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		for _, p := range mapping[prefix] {
			rules = append(rules, Rule{Prefix: prefix, Path: p, Kind: kind, Dev: dev})
		}
	}
	return rules
}
