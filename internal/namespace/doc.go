// Package namespace maps a project folder to the PHP namespace its files
// should declare, using the autoload rules of the governing composer.json.
//
// Matching is segment-exact: a rule for "src" claims "src/Models" but never
// "src-legacy". Candidates are ranked PSR-4 before PSR-0, then by the length
// of the claimed directory, longest first.
package namespace
