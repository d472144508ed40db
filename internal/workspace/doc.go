// Package workspace locates the composer.json governing a folder and loads
// it into a Context. The upward search is bounded by the workspace root and
// probes the filesystem through an injected Prober.
package workspace
