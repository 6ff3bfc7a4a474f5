// Package cmd provides the parenlint command-line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/parenlint/parenlint/version"
)

// NewRootCommand creates the root command for the parenlint CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parenlint",
		Short: "A parenthesization linter for Ruby method calls",
		Long: `parenlint checks Ruby source files for method calls, super delegation,
and yields whose arguments are not wrapped in parentheses, and can insert
the missing parentheses automatically.`,
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags available to all commands
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a configuration file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(NewLintCommand())
	cmd.AddCommand(NewFixCommand())
	cmd.AddCommand(NewRulesCommand())

	return cmd
}
