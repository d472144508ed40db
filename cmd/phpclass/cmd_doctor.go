package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fbkclanna/phpclass/internal/git"
	"github.com/fbkclanna/phpclass/internal/namespace"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [folder]",
		Short: "Diagnose workspace, configuration and composer.json discovery",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	folder := "."
	if len(args) > 0 {
		folder = args[0]
	}
	out := cmd.OutOrStdout()
	ok := true

	_, _ = fmt.Fprint(out, "Checking git... ")
	if git.IsGitInstalled() {
		_, _ = fmt.Fprintln(out, "found")
	} else {
		_, _ = fmt.Fprintln(out, "NOT FOUND")
		_, _ = fmt.Fprintln(out, "  Without git or --root the composer.json search covers only the target folder.")
	}

	s, err := newSession(cmd, folder)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(out, "Workspace root... ")
	if s.root != "" {
		_, _ = fmt.Fprintln(out, s.root)
	} else {
		_, _ = fmt.Fprintln(out, "undefined (searching the target folder only)")
	}

	_, _ = fmt.Fprint(out, "Config file... ")
	switch _, statErr := os.Stat(s.configPath); {
	case s.configPath == "":
		_, _ = fmt.Fprintln(out, "none")
	case statErr == nil:
		_, _ = fmt.Fprintln(out, s.configPath)
	default:
		_, _ = fmt.Fprintf(out, "%s (not present, using defaults)\n", s.configPath)
	}
	if s.cfg.ComposerPath != "" {
		_, _ = fmt.Fprintf(out, "  composer_path override: %s\n", s.cfg.ComposerPath)
	}

	_, _ = fmt.Fprint(out, "Locating composer.json... ")
	ctx, err := s.load(folder)
	if err != nil {
		_, _ = fmt.Fprintln(out, "FAILED")
		_, _ = fmt.Fprintf(out, "  %v\n", err)
		ok = false
	} else {
		_, _ = fmt.Fprintln(out, ctx.Location.File)
		rules := ctx.Rules()
		_, _ = fmt.Fprintf(out, "  %d autoload rule(s)\n", len(rules))
		if len(rules) == 0 {
			_, _ = fmt.Fprintln(out, "  Warning: no psr-4 or psr-0 rules; every folder resolves to no namespace")
		}

		_, _ = fmt.Fprint(out, "Resolving folder... ")
		ns, resErr := namespace.Resolve(ctx.Folder, ctx.Location, rules)
		switch {
		case errors.Is(resErr, namespace.ErrNotResolved):
			_, _ = fmt.Fprintln(out, "no autoload rule claims this folder")
		case resErr != nil:
			_, _ = fmt.Fprintf(out, "FAILED (%v)\n", resErr)
			ok = false
		default:
			_, _ = fmt.Fprintln(out, displayNamespace(ns))
		}
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
