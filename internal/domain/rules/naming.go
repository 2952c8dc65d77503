package rules

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/archlint/archlint/internal/domain"
)

// CodeVagueTypeName is the machine-stable category for vague type names.
const CodeVagueTypeName = "VAGUE_TYPE_NAME"

// vagueWords are generic words that say nothing about what a type is for.
var vagueWords = map[string]bool{
	"Manager": true, "Helper": true, "Util": true, "Utils": true,
	"Data": true, "Info": true, "Item": true, "Object": true,
	"Thing": true, "Stuff": true, "Common": true, "Misc": true,
	"Base": true, "Impl": true, "Temp": true,
}

// VagueNamingRule flags exported type declarations whose names consist
// entirely of vague vocabulary ("DataManager", "BaseHelper"). Names with at
// least one specific word pass.
type VagueNamingRule struct {
	cfg      domain.VagueNamingConfig
	analyzer domain.CodeAnalyzer
}

func NewVagueNamingRule(cfg domain.VagueNamingConfig, analyzer domain.CodeAnalyzer) *VagueNamingRule {
	return &VagueNamingRule{cfg: cfg, analyzer: analyzer}
}

func (r *VagueNamingRule) RuleID() string { return domain.RuleVagueNaming }

func (r *VagueNamingRule) RequiresScanners() []string { return nil }

func (r *VagueNamingRule) Validate(ctx context.Context, corpus domain.Corpus, repoID, rootDir string) ([]domain.ValidationIssue, error) {
	if !r.cfg.Enabled {
		return nil, nil
	}

	perFile, err := mapCorpus(ctx, corpus, func(path string) ([]domain.ValidationIssue, bool, error) {
		if ShouldExclude(path, rootDir, r.cfg.ExcludePatterns) {
			return nil, false, nil
		}
		parsed, err := parseAt(r.analyzer, rootDir, path)
		if err != nil {
			return nil, false, nil
		}
		var issues []domain.ValidationIssue
		for _, decl := range parsed.Types {
			if isVagueName(decl.Name) {
				issues = append(issues, r.newIssue(decl, path, rootDir))
			}
		}
		return issues, len(issues) > 0, nil
	})
	if err != nil {
		return nil, err
	}

	var all []domain.ValidationIssue
	for _, file := range perFile {
		all = append(all, file.Value...)
	}
	return all, nil
}

func (r *VagueNamingRule) newIssue(decl domain.TypeDecl, path, rootDir string) domain.ValidationIssue {
	rel := stablePath(path, rootDir)
	fp := Fingerprint(r.RuleID(), rel, decl.Name)

	return domain.ValidationIssue{
		Severity:   r.cfg.Severity,
		Message:    fmt.Sprintf("type name %q is built only from vague words", decl.Name),
		Code:       CodeVagueTypeName,
		FilePath:   rel,
		LineNumber: decl.Line,
		RuleName:   r.RuleID(),
		Suggestion: "name the type after the concept it models, not its mechanics",
		Context:    domain.NewContext(fp, decl.Name),
	}
}

// isVagueName reports whether every CamelCase word of an exported name is
// vague vocabulary.
func isVagueName(name string) bool {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return false
	}
	words := camelcase.Split(name)
	for _, w := range words {
		low := strings.ToLower(w)
		titled := strings.ToUpper(low[:1]) + low[1:]
		if !vagueWords[titled] {
			return false
		}
	}
	return len(words) > 0
}
