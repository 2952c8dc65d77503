package domain

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule identifiers. Stable, lowercase snake-case, unique.
const (
	RuleDuplicateDefinition = "duplicate_definition"
	RuleObservability       = "observability"
	RuleVagueNaming         = "vague_naming"
)

// ValidRuleIDs enumerates every rule archlint ships.
var ValidRuleIDs = []string{
	RuleDuplicateDefinition,
	RuleObservability,
	RuleVagueNaming,
}

// LintConfig holds repository-level configuration loaded from .archlint.yaml.
// It is resolved once, validated, and never mutated after rules are built.
type LintConfig struct {
	RepoID       string   `yaml:"repo_id"       json:"repo_id,omitempty"`
	ExcludePaths []string `yaml:"exclude_paths" json:"exclude_paths,omitempty"`

	DuplicateDefinition DuplicateDefinitionConfig `yaml:"duplicate_definition" json:"duplicate_definition"`
	Observability       ObservabilityConfig       `yaml:"observability"        json:"observability"`
	VagueNaming         VagueNamingConfig         `yaml:"vague_naming"         json:"vague_naming"`
}

// DuplicateDefinitionConfig tunes the duplicate interface-like type check.
type DuplicateDefinitionConfig struct {
	Enabled          bool     `yaml:"enabled"           json:"enabled"`
	Severity         Severity `yaml:"severity"          json:"severity"`
	ExcludePatterns  []string `yaml:"exclude_patterns"  json:"exclude_patterns,omitempty"`
	AllowlistModules []string `yaml:"allowlist_modules" json:"allowlist_modules,omitempty"`
	Suffix           string   `yaml:"suffix"            json:"suffix"`
	MarkerBase       string   `yaml:"marker_base"       json:"marker_base,omitempty"`
}

// ObservabilityConfig tunes the print/raw-logger check. The two patterns
// toggle independently and carry independent severities.
type ObservabilityConfig struct {
	Enabled            bool     `yaml:"enabled"              json:"enabled"`
	FlagPrint          bool     `yaml:"flag_print"           json:"flag_print"`
	PrintSeverity      Severity `yaml:"print_severity"       json:"print_severity"`
	FlagRawLogging     bool     `yaml:"flag_raw_logging"     json:"flag_raw_logging"`
	RawLoggingSeverity Severity `yaml:"raw_logging_severity" json:"raw_logging_severity"`
	ExcludePatterns    []string `yaml:"exclude_patterns"     json:"exclude_patterns,omitempty"`
	AllowlistModules   []string `yaml:"allowlist_modules"    json:"allowlist_modules,omitempty"`
}

// VagueNamingConfig tunes the vague type-name check.
type VagueNamingConfig struct {
	Enabled         bool     `yaml:"enabled"          json:"enabled"`
	Severity        Severity `yaml:"severity"         json:"severity"`
	ExcludePatterns []string `yaml:"exclude_patterns" json:"exclude_patterns,omitempty"`
}

// DefaultConfig returns the configuration used when no .archlint.yaml exists:
// every rule enabled with conventional severities.
func DefaultConfig() LintConfig {
	return LintConfig{
		DuplicateDefinition: DuplicateDefinitionConfig{
			Enabled:  true,
			Severity: SeverityError,
			Suffix:   "Port",
		},
		Observability: ObservabilityConfig{
			Enabled:            true,
			FlagPrint:          true,
			PrintSeverity:      SeverityWarning,
			FlagRawLogging:     true,
			RawLoggingSeverity: SeverityWarning,
		},
		VagueNaming: VagueNamingConfig{
			Enabled:  true,
			Severity: SeverityInfo,
		},
	}
}

// Validate checks the config and returns a descriptive error naming the
// offending rule and field. A scan must never start with an invalid config.
func (c LintConfig) Validate() error {
	if err := validatePatterns("exclude_paths", c.ExcludePaths); err != nil {
		return err
	}

	if err := c.DuplicateDefinition.validate(); err != nil {
		return fmt.Errorf("%s: %w", RuleDuplicateDefinition, err)
	}
	if err := c.Observability.validate(); err != nil {
		return fmt.Errorf("%s: %w", RuleObservability, err)
	}
	if err := c.VagueNaming.validate(); err != nil {
		return fmt.Errorf("%s: %w", RuleVagueNaming, err)
	}
	return nil
}

func (c DuplicateDefinitionConfig) validate() error {
	if err := validateSeverity("severity", c.Severity); err != nil {
		return err
	}
	if err := validatePatterns("exclude_patterns", c.ExcludePatterns); err != nil {
		return err
	}
	if err := validateAllowlist(c.AllowlistModules); err != nil {
		return err
	}
	if c.Enabled && c.Suffix == "" && c.MarkerBase == "" {
		return fmt.Errorf("suffix and marker_base are both empty (nothing to detect)")
	}
	return nil
}

func (c ObservabilityConfig) validate() error {
	if err := validateSeverity("print_severity", c.PrintSeverity); err != nil {
		return err
	}
	if err := validateSeverity("raw_logging_severity", c.RawLoggingSeverity); err != nil {
		return err
	}
	if err := validatePatterns("exclude_patterns", c.ExcludePatterns); err != nil {
		return err
	}
	return validateAllowlist(c.AllowlistModules)
}

func (c VagueNamingConfig) validate() error {
	if err := validateSeverity("severity", c.Severity); err != nil {
		return err
	}
	return validatePatterns("exclude_patterns", c.ExcludePatterns)
}

func validateSeverity(field string, s Severity) error {
	if s == "" {
		return nil // resolved to the rule default at build time
	}
	if _, err := ParseSeverity(string(s)); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

func validatePatterns(field string, patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%s: invalid glob pattern %q", field, p)
		}
	}
	return nil
}

func validateAllowlist(modules []string) error {
	for _, m := range modules {
		if m == "" {
			return fmt.Errorf("allowlist_modules: empty module path")
		}
		for _, seg := range strings.Split(m, ".") {
			if seg == "" {
				return fmt.Errorf("allowlist_modules: %q has an empty segment", m)
			}
		}
	}
	return nil
}
