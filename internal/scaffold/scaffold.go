// Package scaffold renders and writes PHP class, interface, trait and enum
// skeletons.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrFileExists reports that the target file is already present.
var ErrFileExists = errors.New("file already exists")

// Kind is the PHP structure being created.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindTrait     Kind = "trait"
	KindEnum      Kind = "enum"
)

// Kinds lists the supported kinds in display order.
var Kinds = []Kind{KindClass, KindInterface, KindTrait, KindEnum}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind: %q (must be class, interface, trait, or enum)", s)
}

// Title returns the kind with an upper-case first letter.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// FileName derives the file name from user input. Anything after the first
// space is dropped and the extension is normalized to ".php".
func FileName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.Index(name, " "); i > 0 {
		name = name[:i]
	}
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".php") {
		name = strings.TrimSuffix(name, ext)
	}
	return name + ".php"
}

// TypeName is the declared type name for user input.
func TypeName(name string) string {
	return strings.TrimSuffix(FileName(name), ".php")
}

// ValidateName rejects names that cannot become a PHP file in the target folder.
func ValidateName(name string) error {
	n := TypeName(name)
	if n == "" {
		return fmt.Errorf("name is required")
	}
	if strings.ContainsAny(n, `/\`) {
		return fmt.Errorf("name must not contain path separators")
	}
	return nil
}

// Options describes one file to create.
type Options struct {
	Kind        Kind
	Name        string
	Namespace   string
	StrictTypes bool
}

// Render returns the file content. An empty namespace omits the namespace
// declaration.
func Render(o Options) string {
	var b strings.Builder
	b.WriteString("<?php\n")
	if o.StrictTypes {
		b.WriteString("\ndeclare(strict_types=1);\n")
	}
	if o.Namespace != "" {
		fmt.Fprintf(&b, "\nnamespace %s;\n", o.Namespace)
	}
	fmt.Fprintf(&b, "\n%s %s\n{\n\n}\n", o.Kind, TypeName(o.Name))
	return b.String()
}

// Create writes the rendered file into dir and returns its path.
func Create(dir string, o Options) (string, error) {
	if err := ValidateName(o.Name); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(o.Name))
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrFileExists, path)
	}
	if err := os.WriteFile(path, []byte(Render(o)), 0644); err != nil { //nolint:gosec // source files need to be readable
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
