package rules_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlint/archlint/internal/domain"
	"github.com/archlint/archlint/internal/domain/rules"
)

// stubRule is a minimal Rule for registry/engine tests.
type stubRule struct {
	id       string
	scanners []string
	issues   []domain.ValidationIssue
	err      error
}

func (s stubRule) RuleID() string             { return s.id }
func (s stubRule) RequiresScanners() []string { return s.scanners }
func (s stubRule) Validate(context.Context, domain.Corpus, string, string) ([]domain.ValidationIssue, error) {
	return s.issues, s.err
}

func issueNamed(rule, symbol string) domain.ValidationIssue {
	return domain.ValidationIssue{
		Severity:   domain.SeverityWarning,
		Message:    "stub issue " + symbol,
		Code:       "STUB",
		FilePath:   "a.go",
		LineNumber: 1,
		RuleName:   rule,
		Context:    domain.NewContext(rules.Fingerprint(rule, "a.go", symbol), symbol),
	}
}

func TestRegistry_RejectsInvalidID(t *testing.T) {
	reg := rules.NewRegistry()

	assert.Error(t, reg.Register(stubRule{id: "BadID"}))
	assert.Error(t, reg.Register(stubRule{id: "bad-id"}))
	assert.Error(t, reg.Register(stubRule{id: ""}))
	assert.NoError(t, reg.Register(stubRule{id: "good_id_2"}))
}

func TestRegistry_RejectsDuplicateID(t *testing.T) {
	reg := rules.NewRegistry()

	require.NoError(t, reg.Register(stubRule{id: "observability"}))
	err := reg.Register(stubRule{id: "observability"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "observability")
}

func TestRegistry_RejectsMissingScanner(t *testing.T) {
	reg := rules.NewRegistry()

	err := reg.Register(stubRule{id: "needs_more", scanners: []string{"call_graph"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "call_graph")
}

func TestRegistry_AcceptsAvailableScanner(t *testing.T) {
	reg := rules.NewRegistry("call_graph")

	assert.NoError(t, reg.Register(stubRule{id: "needs_more", scanners: []string{"call_graph"}}))
	assert.NoError(t, reg.Register(stubRule{id: "needs_default", scanners: []string{rules.ScannerImports}}))
}

func TestEngine_ConcatenatesInRegistrationOrder(t *testing.T) {
	reg := rules.NewRegistry()
	require.NoError(t, reg.Register(stubRule{id: "first", issues: []domain.ValidationIssue{
		issueNamed("first", "a"), issueNamed("first", "b"),
	}}))
	require.NoError(t, reg.Register(stubRule{id: "second", issues: []domain.ValidationIssue{
		issueNamed("second", "c"),
	}}))

	engine := rules.NewEngine(reg)
	issues, err := engine.Run(context.Background(), corpusOf("a.go"), "acme/sample", "")
	require.NoError(t, err)

	require.Len(t, issues, 3)
	assert.Equal(t, "first", issues[0].RuleName)
	assert.Equal(t, "first", issues[1].RuleName)
	assert.Equal(t, "second", issues[2].RuleName)
}

func TestEngine_DeterministicAcrossRuns(t *testing.T) {
	build := func() *rules.Engine {
		reg := rules.NewRegistry()
		require.NoError(t, reg.Register(stubRule{id: "first", issues: []domain.ValidationIssue{issueNamed("first", "a")}}))
		require.NoError(t, reg.Register(stubRule{id: "second", issues: []domain.ValidationIssue{issueNamed("second", "b")}}))
		return rules.NewEngine(reg)
	}

	run1, err := build().Run(context.Background(), corpusOf("a.go"), "acme/sample", "")
	require.NoError(t, err)
	run2, err := build().Run(context.Background(), corpusOf("a.go"), "acme/sample", "")
	require.NoError(t, err)

	assert.Equal(t, run1, run2)
}

func TestEngine_PropagatesRuleError(t *testing.T) {
	reg := rules.NewRegistry()
	require.NoError(t, reg.Register(stubRule{id: "healthy", issues: []domain.ValidationIssue{issueNamed("healthy", "a")}}))
	require.NoError(t, reg.Register(stubRule{id: "broken", err: errors.New("walker bug")}))

	engine := rules.NewEngine(reg)
	issues, err := engine.Run(context.Background(), corpusOf("a.go"), "acme/sample", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Nil(t, issues)
}
