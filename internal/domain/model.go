package domain

import (
	"fmt"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Severity classifies how serious a violation is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// ValidSeverities enumerates all recognized severity levels, least to most severe.
var ValidSeverities = []Severity{
	SeverityInfo,
	SeverityWarning,
	SeverityError,
	SeverityCritical,
}

// Rank returns the ordering position of the severity, least severe first.
// Unknown severities rank below info.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityWarning:
		return 2
	case SeverityError:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// ParseSeverity converts a config string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	for _, v := range ValidSeverities {
		if Severity(s) == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown severity %q (valid: info, warning, error, critical)", s)
}

// Context is an ordered string-to-string map attached to an issue.
// Insertion order is preserved through JSON serialization.
type Context = orderedmap.OrderedMap[string, string]

// Context keys every issue carries. Fingerprint identifies the logical
// violation across scan runs; symbol names the violating identifier.
const (
	ContextKeyFingerprint = "fingerprint"
	ContextKeySymbol      = "symbol"
)

// NewContext builds an issue context with the mandatory fingerprint and
// symbol entries first, followed by rule-specific key/value pairs.
func NewContext(fingerprint, symbol string, extra ...string) *Context {
	ctx := orderedmap.New[string, string]()
	ctx.Set(ContextKeyFingerprint, fingerprint)
	ctx.Set(ContextKeySymbol, symbol)
	for i := 0; i+1 < len(extra); i += 2 {
		ctx.Set(extra[i], extra[i+1])
	}
	return ctx
}

// ValidationIssue is one detected violation. Issues are immutable value
// objects: created once per violation per scan, then only aggregated and
// serialized.
type ValidationIssue struct {
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Code       string   `json:"code"`
	FilePath   string   `json:"file_path"`
	LineNumber int      `json:"line_number"`
	RuleName   string   `json:"rule_name"`
	Suggestion string   `json:"suggestion,omitempty"`
	Context    *Context `json:"context"`
}

// Fingerprint returns the issue's stable identity, or "" if the context is
// missing one.
func (i ValidationIssue) Fingerprint() string {
	if i.Context == nil {
		return ""
	}
	fp, _ := i.Context.Get(ContextKeyFingerprint)
	return fp
}

// FileImports is the scanner's per-file record. Rules consume only the
// corpus key set; the import list exists for import-graph consumers.
type FileImports struct {
	Path    string   `json:"path"`
	Imports []string `json:"imports,omitempty"`
}

// Corpus maps repo-relative slash paths to their import records. Built once
// per scan and read-only for the duration of rule execution.
type Corpus map[string]FileImports

// Report is the aggregate result of linting one repository.
type Report struct {
	RepoID      string            `json:"repo_id"`
	Root        string            `json:"root"`
	CommitHash  string            `json:"commit_hash,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	FilesLinted int               `json:"files_linted"`
	Issues      []ValidationIssue `json:"issues"`
}

// CountBySeverity returns how many issues carry each severity.
func (r Report) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, issue := range r.Issues {
		counts[issue.Severity]++
	}
	return counts
}

// HasIssueAtOrAbove reports whether any issue meets the given threshold.
func (r Report) HasIssueAtOrAbove(threshold Severity) bool {
	for _, issue := range r.Issues {
		if issue.Severity.Rank() >= threshold.Rank() {
			return true
		}
	}
	return false
}
