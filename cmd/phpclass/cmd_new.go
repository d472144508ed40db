package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbkclanna/phpclass/internal/git"
	"github.com/fbkclanna/phpclass/internal/namespace"
	"github.com/fbkclanna/phpclass/internal/scaffold"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "new <class|interface|trait|enum> [name] [folder]",
		Short:     "Create a PHP class, interface, trait or enum in the resolved namespace",
		Args:      cobra.RangeArgs(1, 3),
		ValidArgs: []string{"class", "interface", "trait", "enum"},
		RunE:      runNew,
	}
	cmd.Flags().Bool("strict-types", false, "Add declare(strict_types=1)")
	cmd.Flags().Bool("git-add", false, "Stage the created file")
	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	kind, err := scaffold.ParseKind(args[0])
	if err != nil {
		return err
	}
	var name string
	if len(args) > 1 {
		name = args[1]
	}
	folder := "."
	if len(args) > 2 {
		folder = args[2]
	}

	info, err := os.Stat(folder)
	if err != nil {
		return fmt.Errorf("target folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("target folder %s is not a directory", folder)
	}

	s, err := newSession(cmd, folder)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strict-types") {
		s.cfg.StrictTypes, _ = cmd.Flags().GetBool("strict-types")
	}
	if cmd.Flags().Changed("git-add") {
		s.cfg.GitAdd, _ = cmd.Flags().GetBool("git-add")
	}

	res, err := s.resolve(folder)
	if err != nil && !errors.Is(err, namespace.ErrNotResolved) {
		return err
	}
	if err != nil {
		ok, promptErr := confirmGlobalNamespace(cmd, err)
		if promptErr != nil {
			return promptErr
		}
		if !ok {
			return err
		}
	}

	if name == "" {
		name, err = askName(kind, res.Namespace)
		if err != nil {
			return err
		}
	}

	path, err := scaffold.Create(res.Folder, scaffold.Options{
		Kind:        kind,
		Name:        name,
		Namespace:   res.Namespace,
		StrictTypes: s.cfg.StrictTypes,
	})
	if err != nil {
		return err
	}

	if s.cfg.GitAdd {
		stageFile(cmd, path)
	}

	label := res.Namespace
	if label == "" {
		label = "global namespace"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s (%s)\n", kind, path, label)
	return nil
}

// confirmGlobalNamespace asks whether to continue without a namespace. Without
// a TTY it continues with a warning.
func confirmGlobalNamespace(cmd *cobra.Command, cause error) (bool, error) {
	if !isInteractive() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; creating the file in the global namespace\n", cause)
		return true, nil
	}
	return promptConfirm("Create the file in the global namespace?", cause.Error())
}

func askName(kind scaffold.Kind, ns string) (string, error) {
	if !isInteractive() {
		return "", fmt.Errorf("a name is required when not running in a terminal")
	}
	name, err := promptInput(
		"New PHP "+kind.Title(),
		"Name",
		scaffold.ValidateName,
		func(s string) string {
			if ns == "" {
				return scaffold.FileName(s)
			}
			return fmt.Sprintf("%s  →  %s\\%s", scaffold.FileName(s), ns, scaffold.TypeName(s))
		},
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// stageFile runs git add for a created file. Failures are reported as
// warnings and do not undo the creation.
func stageFile(cmd *cobra.Command, path string) {
	if !git.IsGitInstalled() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: git is not installed; skipping git add\n")
		return
	}
	if err := git.Add(filepath.Dir(path), filepath.Base(path)); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: git add failed: %v\n", err)
	}
}
