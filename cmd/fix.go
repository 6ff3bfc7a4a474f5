package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parenlint/parenlint/lint"
)

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Insert missing parentheses in place",
		Long: `Fix rewrites Ruby source files so that call arguments are wrapped in
parentheses, applying the same exemptions as lint. Files are modified in
place; issues that cannot be fixed automatically are still reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			results, err := runFix(cmd, path)
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			fixed := 0
			for _, result := range results {
				issue := result.Issue
				switch {
				case result.Fixed:
					fixed++
				case result.Error != nil:
					_, _ = fmt.Fprintf(os.Stdout, "%s:%d:%d: could not fix: %v\n",
						issue.File, issue.Line, issue.Column, result.Error)
				default:
					_, _ = fmt.Fprintf(os.Stdout, "%s:%d:%d: %s: %s (%s)\n",
						issue.File, issue.Line, issue.Column,
						issue.Severity, issue.Message, issue.Rule)
				}
			}

			_, _ = fmt.Fprintf(os.Stdout, "Fixed %d issue(s)\n", fixed)
			return nil
		},
	}

	return cmd
}

func runFix(cmd *cobra.Command, path string) ([]lint.FixResult, error) {
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return nil, err
	}

	rules := cfg.BuildRules()
	engineCfg := cfg.LintConfig()
	verbose, _ := cmd.Flags().GetBool("verbose")

	files, err := targetFiles(path)
	if err != nil {
		return nil, err
	}

	var results []lint.FixResult
	for _, file := range files {
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "fixing %s\n", file)
		}
		fileResults, err := lint.FixFile(file, rules, engineCfg)
		if err != nil {
			return nil, err
		}
		results = append(results, fileResults...)
	}
	return results, nil
}
