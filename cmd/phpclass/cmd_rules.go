package main

import (
	"encoding/json"
	"path/filepath"

	"github.com/fbkclanna/phpclass/internal/composer"
	"github.com/fbkclanna/phpclass/internal/namespace"
	"github.com/fbkclanna/phpclass/internal/ui"
	"github.com/fbkclanna/phpclass/internal/workspace"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules [folder]",
		Short: "List the autoload rules and which of them claim a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRules,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type ruleStatus struct {
	composer.Rule
	Dir      string `json:"dir"`
	Claims   bool   `json:"claims"`
	Selected bool   `json:"selected"`
}

func runRules(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	folder := "."
	if len(args) > 0 {
		folder = args[0]
	}

	s, err := newSession(cmd, folder)
	if err != nil {
		return err
	}
	ctx, err := s.load(folder)
	if err != nil {
		return err
	}

	statuses := collectRuleStatus(ctx.Folder, ctx.Location, ctx.Rules())
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "KIND", "PREFIX", "PATH", "DEV", "DIR", "CLAIMS")
	for _, st := range statuses {
		claims := ""
		switch {
		case st.Selected:
			claims = "selected"
		case st.Claims:
			claims = "yes"
		}
		dir, err := filepath.Rel(filepath.FromSlash(ctx.Location.Dir), filepath.FromSlash(st.Dir))
		if err != nil {
			dir = st.Dir
		}
		tbl.Row(st.Kind, st.Prefix, st.Path, st.Dev, dir, claims)
	}
	return tbl.Flush()
}

func collectRuleStatus(folder string, loc workspace.Location, rules []composer.Rule) []ruleStatus {
	candidates := namespace.Candidates(folder, loc, rules)

	// Duplicate rules each take their own candidate.
	taken := make([]bool, len(candidates))
	statuses := make([]ruleStatus, 0, len(rules))
	for _, r := range rules {
		dir, _ := namespace.Claim(loc, r)
		st := ruleStatus{Rule: r, Dir: dir}
		for i, c := range candidates {
			if !taken[i] && c.Rule == r && c.Dir == dir {
				taken[i] = true
				st.Claims = true
				st.Selected = i == 0
				break
			}
		}
		statuses = append(statuses, st)
	}
	return statuses
}
