package rules

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/archlint/archlint/internal/domain"
)

// ScannerImports is the default file/import corpus every rule receives.
// RequiresScanners lists scanner ids a rule needs beyond this one.
const ScannerImports = "imports"

// Rule is one self-contained analysis over the shared corpus. Rules are
// constructed once per scan from immutable configuration, hold no per-file
// state, and are safe to re-invoke. A disabled rule returns nil immediately
// without touching the corpus.
type Rule interface {
	// RuleID is the stable lowercase snake-case identifier, unique across
	// all registered rules.
	RuleID() string

	// RequiresScanners lists scanner ids the rule needs beyond the default
	// imports corpus. Usually empty.
	RequiresScanners() []string

	// Validate analyzes the corpus and returns zero or more issues. The
	// corpus must not be mutated. Internal analysis bugs propagate as
	// errors; unreadable or unparsable files are skipped silently.
	Validate(ctx context.Context, corpus domain.Corpus, repoID, rootDir string) ([]domain.ValidationIssue, error)
}

var ruleIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Registry holds the ordered set of active rules and validates them at
// registration time, before any scan begins.
type Registry struct {
	rules     []Rule
	seen      map[string]bool
	available map[string]bool
}

// NewRegistry creates a registry. availableScanners names the scanner ids
// present in this installation beyond the always-available imports corpus.
func NewRegistry(availableScanners ...string) *Registry {
	available := map[string]bool{ScannerImports: true}
	for _, s := range availableScanners {
		available[s] = true
	}
	return &Registry{
		seen:      make(map[string]bool),
		available: available,
	}
}

// Register adds a rule, failing fast on an invalid or duplicate id or on a
// missing required scanner.
func (r *Registry) Register(rule Rule) error {
	id := rule.RuleID()
	if !ruleIDPattern.MatchString(id) {
		return fmt.Errorf("rule id %q is not lowercase snake-case", id)
	}
	if r.seen[id] {
		return fmt.Errorf("rule id %q registered twice", id)
	}
	for _, scanner := range rule.RequiresScanners() {
		if !r.available[scanner] {
			return fmt.Errorf("rule %q requires unavailable scanner %q", id, scanner)
		}
	}
	r.seen[id] = true
	r.rules = append(r.rules, rule)
	return nil
}

// Rules returns the registered rules in registration order.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Engine runs every registered rule over a shared corpus and aggregates
// the results.
type Engine struct {
	registry *Registry
}

func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Run executes all rules against the corpus and concatenates their issues
// in registration order, each rule's contribution in the order the rule
// produced it. Rules execute in parallel; indexed result slots keep the
// final order deterministic regardless of completion order. The first rule
// error aborts the scan: a partially-run rule producing an incomplete list
// is worse than a visibly failed scan.
func (e *Engine) Run(ctx context.Context, corpus domain.Corpus, repoID, rootDir string) ([]domain.ValidationIssue, error) {
	active := e.registry.Rules()
	results := make([][]domain.ValidationIssue, len(active))

	g, gctx := errgroup.WithContext(ctx)
	for i, rule := range active {
		g.Go(func() error {
			issues, err := rule.Validate(gctx, corpus, repoID, rootDir)
			if err != nil {
				return fmt.Errorf("rule %s: %w", rule.RuleID(), err)
			}
			results[i] = issues
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.ValidationIssue
	for _, issues := range results {
		all = append(all, issues...)
	}
	return all, nil
}
