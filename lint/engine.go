package lint

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/parenlint/parenlint/discover"
	"github.com/parenlint/parenlint/syntax"
)

// LintFile lints a single file with the given rules and config.
// Returns all issues found that pass the config filters.
func LintFile(path string, rules []Rule, cfg *Config) ([]Issue, error) {
	file, err := syntax.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return lintParsed(file, path, rules, cfg), nil
}

// LintSource lints source code from bytes with the given rules and config.
// The filename is used for error messages and issue reporting.
func LintSource(src []byte, filename string, rules []Rule, cfg *Config) ([]Issue, error) {
	file, err := syntax.ParseSource(src, filename)
	if err != nil {
		return nil, err
	}

	return lintParsed(file, filename, rules, cfg), nil
}

// LintDir lints all Ruby files in a directory (non-recursively).
func LintDir(dir string, rules []Rule, cfg *Config) ([]Issue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".rb") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		fileIssues, err := LintFile(path, rules, cfg)
		if err != nil {
			return nil, err
		}
		issues = append(issues, fileIssues...)
	}

	return issues, nil
}

// LintDirRecursive lints all Ruby files in a directory and its subdirectories.
func LintDirRecursive(root string, rules []Rule, cfg *Config) ([]Issue, error) {
	var issues []Issue

	opts := discover.WalkOptions{SkipHidden: true, SkipVendor: true}
	err := discover.WalkDir(root, opts, func(path string) error {
		fileIssues, err := LintFile(path, rules, cfg)
		if err != nil {
			return err
		}
		issues = append(issues, fileIssues...)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return issues, nil
}

// lintParsed runs all rules on the parsed file and returns filtered issues.
func lintParsed(file *syntax.File, path string, rules []Rule, cfg *Config) []Issue {
	var issues []Issue

	for _, rule := range rules {
		ruleIssues := rule.Check(file)
		for _, issue := range ruleIssues {
			// Set file path if not already set
			if issue.File == "" {
				issue.File = path
			}

			// Filter by config
			if cfg != nil && !cfg.ShouldReport(issue) {
				continue
			}

			issues = append(issues, issue)
		}
	}

	return issues
}
