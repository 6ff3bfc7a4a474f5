// Package config loads linter configuration from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/parenlint/parenlint/lint"
	"github.com/parenlint/parenlint/rules/parens"
)

// DefaultFilename is the default name for configuration files.
const DefaultFilename = ".parenlint.yml"

// File is the on-disk configuration shape.
type File struct {
	// MinSeverity is the least severe issue level to report.
	MinSeverity lint.Severity `yaml:"min_severity"`
	// DisabledRules lists rule IDs to skip.
	DisabledRules []string `yaml:"disabled_rules"`
	// Rules holds per-rule settings.
	Rules RuleSettings `yaml:"rules"`
}

// RuleSettings groups the settings of every known rule.
type RuleSettings struct {
	Parens parens.Config `yaml:"parens"`
}

// Default returns the configuration used when no file is present: report
// everything, exempt macro-style calls.
func Default() *File {
	return &File{MinSeverity: lint.SeverityInfo}
}

// Load loads configuration from the specified path. If path is a directory,
// it looks for .parenlint.yml in that directory; a missing file yields the
// defaults. If path is empty, it looks in the current directory.
func Load(path string) (*File, error) {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		path = filepath.Join(path, DefaultFilename)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
	}

	return LoadFile(path)
}

// LoadFile loads configuration from a specific file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses configuration from YAML bytes. Unknown keys are rejected so a
// typo does not silently disable anything.
func Parse(data []byte) (*File, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// LintConfig converts the file into the engine's filter configuration.
func (f *File) LintConfig() *lint.Config {
	return &lint.Config{
		DisabledRules: f.DisabledRules,
		MinSeverity:   f.MinSeverity,
	}
}

// BuildRules constructs the rule set described by this configuration.
func (f *File) BuildRules() []lint.Rule {
	return []lint.Rule{
		parens.New(f.Rules.Parens),
	}
}
