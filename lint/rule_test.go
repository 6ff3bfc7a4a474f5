package lint

import (
	"strings"
	"testing"

	"github.com/parenlint/parenlint/syntax"
)

// mockRule is a simple rule implementation for testing
type mockRule struct {
	id          string
	description string
	issues      []Issue
}

func (r *mockRule) ID() string {
	return r.id
}

func (r *mockRule) Description() string {
	return r.description
}

func (r *mockRule) Check(file *syntax.File) []Issue {
	return r.issues
}

// triggerRule reports one issue when the file path contains its trigger.
type triggerRule struct {
	id       string
	trigger  string
	severity Severity
	fixable  bool
	edits    []TextEdit
	fixErr   error
}

func (r *triggerRule) ID() string          { return r.id }
func (r *triggerRule) Description() string { return "Trigger rule: " + r.id }

func (r *triggerRule) Check(file *syntax.File) []Issue {
	if !strings.Contains(file.Path, r.trigger) {
		return nil
	}
	return []Issue{{
		Rule:     r.id,
		Message:  "triggered",
		Line:     1,
		Column:   1,
		Severity: r.severity,
		Fixable:  r.fixable,
	}}
}

func (r *triggerRule) Fix(file *syntax.File, issue Issue) ([]TextEdit, error) {
	return r.edits, r.fixErr
}

func TestRuleInterface(t *testing.T) {
	rule := &mockRule{
		id:          "TEST001",
		description: "Test rule description",
		issues: []Issue{
			{Rule: "TEST001", Message: "test issue", Line: 1},
		},
	}

	// Verify it implements Rule interface
	var _ Rule = rule

	if rule.ID() != "TEST001" {
		t.Errorf("ID() = %q, want %q", rule.ID(), "TEST001")
	}
	if rule.Description() != "Test rule description" {
		t.Errorf("Description() = %q, want %q", rule.Description(), "Test rule description")
	}

	file, err := syntax.ParseSource([]byte("x = 1\n"), "test.rb")
	if err != nil {
		t.Fatal(err)
	}

	issues := rule.Check(file)
	if len(issues) != 1 {
		t.Errorf("Check() returned %d issues, want 1", len(issues))
	}
}

func TestFixableRuleInterface(t *testing.T) {
	rule := &triggerRule{
		id:      "TEST002",
		trigger: "test.rb",
		fixable: true,
		edits:   []TextEdit{{Start: 0, End: 0, NewText: "# fixed\n"}},
	}

	// Verify it implements both Rule and FixableRule interfaces
	var _ Rule = rule
	var _ FixableRule = rule

	file, err := syntax.ParseSource([]byte("x = 1\n"), "test.rb")
	if err != nil {
		t.Fatal(err)
	}

	issues := rule.Check(file)
	if len(issues) != 1 {
		t.Fatalf("Check() returned %d issues, want 1", len(issues))
	}

	edits, err := rule.Fix(file, issues[0])
	if err != nil {
		t.Errorf("Fix() error = %v", err)
	}
	if len(edits) != 1 {
		t.Errorf("Fix() returned %d edits, want 1", len(edits))
	}
}

func TestRuleRegistration(t *testing.T) {
	registry := NewRuleRegistry()

	rule1 := &mockRule{id: "TEST001", description: "Rule 1"}
	rule2 := &mockRule{id: "TEST002", description: "Rule 2"}

	registry.Register(rule1)
	registry.Register(rule2)

	if got := registry.Get("TEST001"); got == nil {
		t.Error("Get(TEST001) = nil, want rule")
	}
	if got := registry.Get("TEST002"); got == nil {
		t.Error("Get(TEST002) = nil, want rule")
	}
	if got := registry.Get("NONEXISTENT"); got != nil {
		t.Error("Get(NONEXISTENT) = non-nil, want nil")
	}

	all := registry.All()
	if len(all) != 2 {
		t.Errorf("All() returned %d rules, want 2", len(all))
	}

	ids := registry.IDs()
	if len(ids) != 2 || ids[0] != "TEST001" || ids[1] != "TEST002" {
		t.Errorf("IDs() = %v, want [TEST001 TEST002]", ids)
	}
}

func TestRuleRegistrationReplaces(t *testing.T) {
	registry := NewRuleRegistry()

	registry.Register(&mockRule{id: "TEST001", description: "first"})
	registry.Register(&mockRule{id: "TEST001", description: "second"})

	got := registry.Get("TEST001")
	if got == nil || got.Description() != "second" {
		t.Error("Register() should replace a rule with the same ID")
	}
}
