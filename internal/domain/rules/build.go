package rules

import (
	"fmt"

	"github.com/archlint/archlint/internal/domain"
)

// BuildRegistry constructs the shipped rule set from a validated config and
// registers it. Registration failures are configuration errors: they occur
// before any scan begins.
func BuildRegistry(cfg domain.LintConfig, analyzer domain.CodeAnalyzer) (*Registry, error) {
	registry := NewRegistry()

	all := []Rule{
		NewDuplicateDefinitionRule(cfg.DuplicateDefinition, analyzer),
		NewObservabilityRule(cfg.Observability, analyzer),
		NewVagueNamingRule(cfg.VagueNaming, analyzer),
	}
	for _, rule := range all {
		if err := registry.Register(rule); err != nil {
			return nil, fmt.Errorf("registering rules: %w", err)
		}
	}
	return registry, nil
}
