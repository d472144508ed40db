package scaffold

import (
	"regexp"
)

var namespaceDecl = regexp.MustCompile(`(?m)^\s*namespace\s+([A-Za-z_\x80-\xff][A-Za-z0-9_\x80-\xff\\]*)\s*[;{]`)

// DeclaredNamespace returns the first namespace declared in PHP source.
// ok is false when the file has no namespace declaration.
func DeclaredNamespace(src []byte) (ns string, ok bool) {
	m := namespaceDecl.FindSubmatch(src)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}
