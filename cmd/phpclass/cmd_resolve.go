package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fbkclanna/phpclass/internal/namespace"
	"github.com/fbkclanna/phpclass/internal/ui"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [folder...]",
		Short: "Print the namespace a file in each folder should declare",
		RunE:  runResolve,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if len(args) == 0 {
		args = []string{"."}
	}

	results := make([]*namespace.Result, 0, len(args))
	for _, folder := range args {
		s, err := newSession(cmd, folder)
		if err != nil {
			return err
		}
		res, err := s.resolve(folder)
		switch {
		case errors.Is(err, namespace.ErrNotResolved):
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		case err != nil:
			return err
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 1 {
		_, err := fmt.Fprintln(out, results[0].Namespace)
		return err
	}

	tbl := ui.NewTable(out, "FOLDER", "NAMESPACE", "RESOLVED")
	for _, r := range results {
		tbl.Row(r.Folder, r.Namespace, r.Resolved)
	}
	return tbl.Flush()
}
