package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FileName is the manifest file looked up in project directories.
const FileName = "composer.json"

// Manifest is the subset of composer.json used for namespace resolution.
type Manifest struct {
	Name        string   `json:"name,omitempty"`
	Autoload    Autoload `json:"autoload"`
	AutoloadDev Autoload `json:"autoload-dev"`
}

// Autoload is one autoload section (production or dev).
type Autoload struct {
	PSR4 map[string]Paths `json:"psr-4,omitempty"`
	PSR0 map[string]Paths `json:"psr-0,omitempty"`
}

// UnmarshalJSON treats null and an empty array as an empty section.
// Composer serializes empty objects as [] in some generated manifests.
func (a *Autoload) UnmarshalJSON(data []byte) error {
	if isEmptyValue(data) {
		*a = Autoload{}
		return nil
	}
	var raw struct {
		PSR4 json.RawMessage `json:"psr-4"`
		PSR0 json.RawMessage `json:"psr-0"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	psr4, err := decodeMapping(raw.PSR4)
	if err != nil {
		return fmt.Errorf("psr-4: %w", err)
	}
	psr0, err := decodeMapping(raw.PSR0)
	if err != nil {
		return fmt.Errorf("psr-0: %w", err)
	}
	*a = Autoload{PSR4: psr4, PSR0: psr0}
	return nil
}

func decodeMapping(data json.RawMessage) (map[string]Paths, error) {
	if len(data) == 0 || isEmptyValue(data) {
		return nil, nil
	}
	var m map[string]Paths
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Paths is a mapping target: either a single directory or a list of them.
type Paths []string

// UnmarshalJSON accepts a JSON string or an array of strings.
func (p *Paths) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Paths{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("autoload path must be a string or a list of strings: %w", err)
	}
	*p = list
	return nil
}

func isEmptyValue(data []byte) bool {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return true
	}
	if len(data) >= 2 && data[0] == '[' && data[len(data)-1] == ']' {
		return len(bytes.TrimSpace(data[1:len(data)-1])) == 0
	}
	return false
}

// Kind is the autoload convention a rule follows.
type Kind int

const (
	PSR0 Kind = iota
	PSR4
)

func (k Kind) String() string {
	switch k {
	case PSR4:
		return "psr-4"
	case PSR0:
		return "psr-0"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText lets rules be emitted as JSON with readable kinds.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses "psr-4" or "psr-0".
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "psr-4":
		*k = PSR4
	case "psr-0":
		*k = PSR0
	default:
		return fmt.Errorf("unknown autoload kind %q", text)
	}
	return nil
}

// Rule maps a namespace prefix to a directory relative to the manifest.
type Rule struct {
	Prefix string `json:"prefix"`
	Path   string `json:"path"`
	Kind   Kind   `json:"kind"`
	Dev    bool   `json:"dev,omitempty"`
}
