package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/parenlint/parenlint/config"
	"github.com/parenlint/parenlint/discover"
	"github.com/parenlint/parenlint/lint"
)

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Check Ruby sources for unparenthesized call arguments",
		Long: `Lint analyzes Ruby source files and reports every method call, super
delegation, and yield that passes arguments without parentheses.

Issues are printed as file:line:column with the rule ID and severity.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			issues, err := runLint(cmd, path)
			if err != nil {
				return fmt.Errorf("lint failed: %w", err)
			}

			if len(issues) == 0 {
				_, _ = fmt.Fprintln(os.Stdout, "No issues found")
				return nil
			}

			for _, issue := range issues {
				_, _ = fmt.Fprintf(os.Stdout, "%s:%d:%d: %s: %s (%s)\n",
					issue.File, issue.Line, issue.Column,
					issue.Severity, issue.Message, issue.Rule)
			}

			// Count errors vs warnings
			errorCount := 0
			for _, issue := range issues {
				if issue.Severity == lint.SeverityError {
					errorCount++
				}
			}

			if errorCount > 0 {
				return fmt.Errorf("lint found %d error(s)", errorCount)
			}

			return nil
		},
	}

	return cmd
}

// runLint resolves configuration and lints the path, which may be a single
// file or a directory tree.
func runLint(cmd *cobra.Command, path string) ([]lint.Issue, error) {
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

	var issues []lint.Issue
	for _, file := range files {
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "checking %s\n", file)
		}
		fileIssues, err := lint.LintFile(file, rules, engineCfg)
		if err != nil {
			return nil, err
		}
		issues = append(issues, fileIssues...)
	}
	return issues, nil
}

// targetFiles resolves a lint/fix target to the Ruby files it covers.
func targetFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	opts := discover.WalkOptions{SkipHidden: true, SkipVendor: true}
	return discover.ListFiles(path, opts)
}

// loadConfig loads the file named by --config, or searches the lint target's
// directory (falling back to defaults when nothing is found).
func loadConfig(cmd *cobra.Command, path string) (*config.File, error) {
	if explicit, _ := cmd.Flags().GetString("config"); explicit != "" {
		return config.LoadFile(explicit)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		path = filepath.Dir(path)
	}
	return config.Load(path)
}
