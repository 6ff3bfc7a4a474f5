package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parenlint/parenlint/syntax"
)

// maxFixPasses bounds the lint/fix cycle. Each fix pass corrects the
// outermost offending call only; nested offenses inside the freshly inserted
// parentheses are picked up by the next pass.
const maxFixPasses = 10

// FixResult represents the result of attempting to fix an issue.
type FixResult struct {
	// Issue is the original lint issue.
	Issue Issue
	// Fixed indicates whether the issue was successfully fixed.
	Fixed bool
	// Error contains any error that occurred during fixing.
	Error error
}

// FixSource repeatedly lints and rewrites src until no fixable issues
// remain, and returns the rewritten source together with a result per
// distinct issue encountered along the way. Edits from different issues are
// only applied in the same pass when they do not touch each other; a nested
// offense waits for the pass after its enclosing call has been corrected.
func FixSource(src []byte, filename string, rules []Rule, cfg *Config) ([]byte, []FixResult, error) {
	var results []FixResult
	failed := make(map[string]bool)

	for pass := 0; pass < maxFixPasses; pass++ {
		file, err := syntax.ParseSource(src, filename)
		if err != nil {
			return nil, nil, err
		}

		issues := lintParsed(file, filename, rules, cfg)

		var pending []TextEdit
		for _, issue := range issues {
			if !issue.Fixable || failed[issueKey(issue)] {
				if pass == 0 {
					results = append(results, FixResult{Issue: issue})
				}
				continue
			}

			fixable, ok := findRule(rules, issue.Rule).(FixableRule)
			if !ok {
				if pass == 0 {
					results = append(results, FixResult{Issue: issue})
				}
				continue
			}

			edits, err := fixable.Fix(file, issue)
			if err != nil {
				failed[issueKey(issue)] = true
				results = append(results, FixResult{Issue: issue, Error: err})
				continue
			}

			if touchesAny(edits, pending) {
				// Leave it for a later pass.
				continue
			}

			pending = append(pending, edits...)
			results = append(results, FixResult{Issue: issue, Fixed: true})
		}

		if len(pending) == 0 {
			break
		}

		src, err = ApplyEdits(src, pending)
		if err != nil {
			return nil, nil, err
		}
	}

	return src, results, nil
}

// FixFile fixes issues in a file and writes the changes back.
// Returns a slice of FixResults indicating what was fixed.
func FixFile(path string, rules []Rule, cfg *Config) ([]FixResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fixed, results, err := FixSource(src, path, rules, cfg)
	if err != nil {
		return nil, err
	}

	if string(fixed) != string(src) {
		if err := os.WriteFile(path, fixed, 0644); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// FixDir fixes issues in all Ruby files in a directory (non-recursively).
func FixDir(dir string, rules []Rule, cfg *Config) ([]FixResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var results []FixResult
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".rb") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		fileResults, err := FixFile(path, rules, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, fileResults...)
	}

	return results, nil
}

func findRule(rules []Rule, id string) Rule {
	for _, r := range rules {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// issueKey identifies an issue across passes. Offsets shift as edits land,
// so the key is only used to avoid retrying fixes that already failed; a
// shifted duplicate retry is harmless.
func issueKey(issue Issue) string {
	return fmt.Sprintf("%s:%d:%d", issue.Rule, issue.Line, issue.Column)
}

// touchesAny reports whether any edit in a intersects an edit in b.
// Insertions at an identical offset count as touching: their relative order
// would be ambiguous within one rewrite pass.
func touchesAny(a, b []TextEdit) bool {
	for _, ea := range a {
		for _, eb := range b {
			if ea.Start < eb.End && eb.Start < ea.End {
				return true
			}
			if ea.Start == eb.Start && ea.End == ea.Start && eb.End == eb.Start {
				return true
			}
		}
	}
	return false
}
