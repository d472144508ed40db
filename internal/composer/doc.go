// Package composer parses composer.json manifests and flattens their
// autoload sections into PSR-4 and PSR-0 rules.
package composer
