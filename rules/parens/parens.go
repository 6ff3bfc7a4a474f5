// Package parens implements the method-call parenthesization rule: calls
// that pass arguments must wrap them in parentheses.
package parens

import (
	"fmt"

	"github.com/parenlint/parenlint/lint"
	"github.com/parenlint/parenlint/syntax"
)

// RuleID identifies this rule in issues and configuration.
const RuleID = "STYLE001"

// Message is the fixed offense text.
const Message = "Use parentheses for method calls with arguments."

// Config controls which calls are exempt from the rule.
type Config struct {
	// IgnoredMethods lists method names that are exempt entirely.
	// Matching is exact; the list applies to ordinary calls only.
	IgnoredMethods []string `yaml:"ignored_methods"`
	// IgnoreMacros exempts macro-style calls (receiverless calls in a
	// declarative position). Defaults to true when unset.
	IgnoreMacros *bool `yaml:"ignore_macros"`
}

// Rule flags unparenthesized arguments on ordinary method calls, super
// delegation, and yields. It holds only immutable configuration, so a single
// instance is safe to share across concurrent analyses.
type Rule struct {
	ignoredMethods map[string]struct{}
	ignoreMacros   bool
}

// New builds the rule from its configuration. The ignore list is normalized
// into a set once, here, rather than per call site.
func New(cfg Config) *Rule {
	ignored := make(map[string]struct{}, len(cfg.IgnoredMethods))
	for _, name := range cfg.IgnoredMethods {
		ignored[name] = struct{}{}
	}

	ignoreMacros := true
	if cfg.IgnoreMacros != nil {
		ignoreMacros = *cfg.IgnoreMacros
	}

	return &Rule{ignoredMethods: ignored, ignoreMacros: ignoreMacros}
}

// ID returns the unique identifier for this rule.
func (r *Rule) ID() string { return RuleID }

// Description returns a brief description of what the rule checks.
func (r *Rule) Description() string {
	return "Method calls with arguments must use parentheses"
}

// Check reports one issue per call whose arguments lack parentheses.
func (r *Rule) Check(file *syntax.File) []lint.Issue {
	var issues []lint.Issue
	for _, c := range file.Calls() {
		if !r.flagged(c) {
			continue
		}

		issues = append(issues, lint.Issue{
			Rule:     RuleID,
			Message:  Message,
			File:     file.Path,
			Line:     c.Line,
			Column:   c.Column,
			Offset:   c.Selector.Start,
			Severity: lint.SeverityWarning,
			Fixable:  c.ArgumentsEnd > c.ArgumentsBegin(),
		})
	}
	return issues
}

// flagged decides whether a candidate violates the rule.
func (r *Rule) flagged(c syntax.Candidate) bool {
	switch c.Kind {
	case syntax.OrdinaryCall:
		if !c.HasArguments || c.Parenthesized || c.OperatorLike {
			return false
		}
		if r.ignoreMacros && c.MacroLike {
			return false
		}
		if _, ok := r.ignoredMethods[c.MethodName]; ok {
			return false
		}
		return true
	case syntax.SuperCall:
		// A super delegation always carries arguments, implicitly when
		// written bare. The ignore list and macro exemption do not apply.
		return !c.Parenthesized
	case syntax.Suspension:
		return c.HasArguments && !c.Parenthesized
	default:
		return false
	}
}

// Fix locates the issue's call and returns the paired edits wrapping its
// arguments.
func (r *Rule) Fix(file *syntax.File, issue lint.Issue) ([]lint.TextEdit, error) {
	for _, c := range file.Calls() {
		if c.Selector.Start == issue.Offset {
			return CorrectionEdits(file.Source, c)
		}
	}
	return nil, fmt.Errorf("no call found at offset %d in %s", issue.Offset, issue.File)
}

// CorrectionEdits computes the two edits that parenthesize a candidate's
// arguments: the separating space directly after the selector (or keyword)
// becomes the opening parenthesis, and a closing parenthesis is inserted at
// the end of the argument list. It does not re-check whether the candidate
// is actually flagged; callers are expected to know. An empty argument span
// is a contract violation and yields an error, never a malformed edit.
func CorrectionEdits(src []byte, c syntax.Candidate) ([]lint.TextEdit, error) {
	begin := c.ArgumentsBegin()
	if c.ArgumentsEnd <= begin {
		return nil, fmt.Errorf("call at offset %d has no argument span to parenthesize", c.Selector.Start)
	}

	open := lint.TextEdit{Start: begin, End: begin + 1, NewText: "("}
	if begin >= len(src) || (src[begin] != ' ' && src[begin] != '\t') {
		// Arguments follow the selector with no separator to consume.
		open.End = open.Start
	}

	return []lint.TextEdit{
		open,
		{Start: c.ArgumentsEnd, End: c.ArgumentsEnd, NewText: ")"},
	}, nil
}
