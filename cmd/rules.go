package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parenlint/parenlint/config"
	"github.com/parenlint/parenlint/lint"
)

// NewRulesCommand creates the rules command, which lists the known rules.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := lint.NewRuleRegistry()
			for _, rule := range config.Default().BuildRules() {
				registry.Register(rule)
			}

			for _, id := range registry.IDs() {
				rule := registry.Get(id)
				fixable := ""
				if _, ok := rule.(lint.FixableRule); ok {
					fixable = " (fixable)"
				}
				_, _ = fmt.Fprintf(os.Stdout, "%s%s: %s\n", id, fixable, rule.Description())
			}

			return nil
		},
	}

	return cmd
}
