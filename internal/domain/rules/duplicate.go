package rules

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/archlint/archlint/internal/domain"
)

// CodeDuplicateDefinition is the machine-stable category for duplicate
// interface-like definitions.
const CodeDuplicateDefinition = "DUPLICATE_DEFINITION"

// DuplicateDefinitionRule flags an interface-like type defined in more than
// one file of the corpus. A type counts as interface-like when its name
// ends with the configured suffix or when a declared base resolves, by
// simple or dotted name, to the configured marker base. An aliased import
// of the marker base is not resolved; the suffix check is the primary net.
type DuplicateDefinitionRule struct {
	cfg      domain.DuplicateDefinitionConfig
	analyzer domain.CodeAnalyzer
}

func NewDuplicateDefinitionRule(cfg domain.DuplicateDefinitionConfig, analyzer domain.CodeAnalyzer) *DuplicateDefinitionRule {
	return &DuplicateDefinitionRule{cfg: cfg, analyzer: analyzer}
}

func (r *DuplicateDefinitionRule) RuleID() string { return domain.RuleDuplicateDefinition }

func (r *DuplicateDefinitionRule) RequiresScanners() []string { return nil }

type typeOccurrence struct {
	Path string
	Line int
}

func (r *DuplicateDefinitionRule) Validate(ctx context.Context, corpus domain.Corpus, repoID, rootDir string) ([]domain.ValidationIssue, error) {
	if !r.cfg.Enabled {
		return nil, nil
	}

	perFile, err := mapCorpus(ctx, corpus, func(path string) ([]domain.TypeDecl, bool, error) {
		if ShouldExcludeWithModules(path, rootDir, r.cfg.ExcludePatterns, r.cfg.AllowlistModules) {
			return nil, false, nil
		}
		parsed, err := parseAt(r.analyzer, rootDir, path)
		if err != nil {
			return nil, false, nil // unreadable or unparsable, skip silently
		}
		var markers []domain.TypeDecl
		for _, decl := range parsed.Types {
			if r.isMarkerType(decl) {
				markers = append(markers, decl)
			}
		}
		return markers, len(markers) > 0, nil
	})
	if err != nil {
		return nil, err
	}

	// Aggregate name -> occurrences. perFile is path-sorted, so occurrence
	// lists are deterministic.
	occurrences := make(map[string][]typeOccurrence)
	for _, file := range perFile {
		for _, decl := range file.Value {
			occurrences[decl.Name] = append(occurrences[decl.Name], typeOccurrence{
				Path: file.Path,
				Line: decl.Line,
			})
		}
	}

	names := make([]string, 0, len(occurrences))
	for name, occs := range occurrences {
		if len(occs) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var issues []domain.ValidationIssue
	for _, name := range names {
		occs := occurrences[name]
		// One issue per occurrence so downstream tooling can attribute each
		// location independently.
		for _, occ := range occs {
			issues = append(issues, r.newIssue(name, occ, occs, rootDir))
		}
	}
	return issues, nil
}

func (r *DuplicateDefinitionRule) newIssue(name string, occ typeOccurrence, all []typeOccurrence, rootDir string) domain.ValidationIssue {
	otherFiles := make([]string, 0, len(all)-1)
	for _, other := range all {
		if other != occ {
			otherFiles = append(otherFiles, stablePath(other.Path, rootDir))
		}
	}

	rel := stablePath(occ.Path, rootDir)
	fp := Fingerprint(r.RuleID(), rel, name)

	return domain.ValidationIssue{
		Severity:   r.cfg.Severity,
		Message:    fmt.Sprintf("interface-like type %q is defined in %d files", name, len(all)),
		Code:       CodeDuplicateDefinition,
		FilePath:   rel,
		LineNumber: occ.Line,
		RuleName:   r.RuleID(),
		Suggestion: fmt.Sprintf("keep a single definition of %q and import it where needed", name),
		Context: domain.NewContext(fp, name,
			"other_files", strings.Join(otherFiles, ", "),
			"total_definitions", fmt.Sprintf("%d", len(all)),
		),
	}
}

func (r *DuplicateDefinitionRule) isMarkerType(decl domain.TypeDecl) bool {
	if r.cfg.Suffix != "" && strings.HasSuffix(decl.Name, r.cfg.Suffix) {
		return true
	}
	if r.cfg.MarkerBase == "" {
		return false
	}
	for _, base := range decl.Bases {
		if base == r.cfg.MarkerBase || strings.HasSuffix(base, "."+r.cfg.MarkerBase) {
			return true
		}
	}
	return false
}
