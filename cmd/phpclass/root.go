package main

import (
	"github.com/fbkclanna/phpclass/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "phpclass",
		Short:         "Create PHP classes in the namespace Composer autoloads them from",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("root", "", "Workspace root bounding the composer.json search (default: git top level)")
	cmd.PersistentFlags().String("composer", "", "composer.json file or directory, relative to the workspace root")
	cmd.PersistentFlags().String("config", "", "Config file (default: <root>/"+config.FileName+")")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log resolution steps to stderr")

	cmd.AddCommand(
		newResolveCmd(),
		newNewCmd(),
		newRulesCmd(),
		newCheckCmd(),
		newConfigCmd(),
		newDoctorCmd(),
	)

	return cmd
}
