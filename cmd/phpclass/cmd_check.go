package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fbkclanna/phpclass/internal/namespace"
	"github.com/fbkclanna/phpclass/internal/scaffold"
	"github.com/fbkclanna/phpclass/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// skippedDirs are never descended into by check.
var skippedDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [folder]",
		Short: "Verify that PHP files declare the namespace their folder resolves to",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	folder := "."
	if len(args) > 0 {
		folder = args[0]
	}

	s, err := newSession(cmd, folder)
	if err != nil {
		return err
	}

	files, err := phpFiles(folder)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No PHP files found.")
		return nil
	}

	p := ui.NewProgress(cmd.OutOrStdout(), len(files))
	type expectation struct {
		ns      string
		claimed bool
	}
	expected := make(map[string]expectation)
	for _, file := range files {
		dir := filepath.Dir(file)
		want, known := expected[dir]
		if !known {
			res, err := s.resolve(dir)
			switch {
			case errors.Is(err, namespace.ErrNotResolved):
				// Unclaimed folders have no expected namespace.
			case err != nil:
				return err
			default:
				want = expectation{ns: res.Namespace, claimed: true}
			}
			expected[dir] = want
		}
		if !want.claimed {
			p.Skip(file)
			continue
		}

		src, err := os.ReadFile(file) //nolint:gosec // file comes from walking the checked folder
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		got, _ := scaffold.DeclaredNamespace(src)
		if got == want.ns {
			p.Done(file)
			continue
		}
		s.logger.Debug("namespace mismatch", zap.String("file", file), zap.String("declared", got), zap.String("expected", want.ns))
		p.Fail(file)
		p.Log("       declared %s, expected %s", displayNamespace(got), displayNamespace(want.ns))
	}

	if n := p.Failures(); n > 0 {
		return fmt.Errorf("%d of %d file(s) declare an unexpected namespace", n, len(files))
	}
	return nil
}

// phpFiles lists .php files below root in lexical order.
func phpFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".php") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

func displayNamespace(ns string) string {
	if ns == "" {
		return "(global)"
	}
	return ns
}
