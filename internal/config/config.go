// Package config loads operator settings for phpclass.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the caller)
//  2. Environment variables (PHPCLASS_COMPOSER_PATH, PHPCLASS_STRICT_TYPES, PHPCLASS_GIT_ADD)
//  3. The .phpclass.yaml file in the workspace root
//  4. Zero values
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in the workspace root.
	FileName = ".phpclass.yaml"

	envPrefix   = "PHPCLASS_"
	maxFileSize = 1024 * 1024
)

// Config holds phpclass settings.
type Config struct {
	// ComposerPath overrides where composer.json lives: a .json file or a
	// directory containing composer.json, relative to the workspace root
	// unless absolute.
	ComposerPath string `koanf:"composer_path" yaml:"composer_path"`
	// StrictTypes adds declare(strict_types=1) to created files.
	StrictTypes bool `koanf:"strict_types" yaml:"strict_types"`
	// GitAdd stages created files.
	GitAdd bool `koanf:"git_add" yaml:"git_add"`
}

// Path returns the config file location for a workspace root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the config file at path, if present, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := k.Load(rawbytes.Provider(data), koanfyaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxFileSize)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace config file
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
