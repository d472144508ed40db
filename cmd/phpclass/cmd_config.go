package main

import (
	"fmt"
	"os"

	"github.com/fbkclanna/phpclass/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the phpclass configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to " + config.FileName + " in the workspace root",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("strict-types", false, "Add declare(strict_types=1) to created files")
	cmd.Flags().Bool("git-add", false, "Stage created files")
	return cmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")

	s, err := newSession(cmd, ".")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strict-types") {
		s.cfg.StrictTypes, _ = cmd.Flags().GetBool("strict-types")
	}
	if cmd.Flags().Changed("git-add") {
		s.cfg.GitAdd, _ = cmd.Flags().GetBool("git-add")
	}

	path := s.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = config.Path(wd)
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.Save(path, s.cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd, ".")
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
