package rules

import (
	"context"
	"fmt"

	"github.com/archlint/archlint/internal/domain"
)

// Machine-stable categories for the observability patterns.
const (
	CodePrintCall = "PRINT_CALL"
	CodeRawLogger = "RAW_LOGGER"
)

// Pattern tags used in fingerprints and issue context.
const (
	patternPrint      = "print"
	patternRawLogging = "raw_logging"
)

// printBuiltins are the bare console-print primitives.
var printBuiltins = map[string]bool{
	"print":   true,
	"println": true,
}

// printSelectors are fmt functions that write straight to stdout.
var printSelectors = map[string]bool{
	"Print":   true,
	"Printf":  true,
	"Println": true,
}

// loggerReceivers are the conventional module aliases a raw logger is
// constructed from.
var loggerReceivers = map[string]bool{
	"log":     true,
	"logging": true,
}

// loggerFactories are the constructor names that yield a raw logger.
var loggerFactories = map[string]bool{
	"New":     true,
	"Default": true,
}

// ObservabilityRule flags two independently toggled anti-patterns: ad-hoc
// console printing and direct construction of a raw logger instead of the
// sanctioned logging facade.
type ObservabilityRule struct {
	cfg      domain.ObservabilityConfig
	analyzer domain.CodeAnalyzer
}

func NewObservabilityRule(cfg domain.ObservabilityConfig, analyzer domain.CodeAnalyzer) *ObservabilityRule {
	return &ObservabilityRule{cfg: cfg, analyzer: analyzer}
}

func (r *ObservabilityRule) RuleID() string { return domain.RuleObservability }

func (r *ObservabilityRule) RequiresScanners() []string { return nil }

func (r *ObservabilityRule) Validate(ctx context.Context, corpus domain.Corpus, repoID, rootDir string) ([]domain.ValidationIssue, error) {
	if !r.cfg.Enabled || (!r.cfg.FlagPrint && !r.cfg.FlagRawLogging) {
		return nil, nil
	}

	perFile, err := mapCorpus(ctx, corpus, func(path string) ([]domain.ValidationIssue, bool, error) {
		if ShouldExcludeWithModules(path, rootDir, r.cfg.ExcludePatterns, r.cfg.AllowlistModules) {
			return nil, false, nil
		}
		parsed, err := parseAt(r.analyzer, rootDir, path)
		if err != nil {
			return nil, false, nil // unreadable or unparsable, skip silently
		}
		issues := r.checkFile(parsed, path, rootDir)
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

func (r *ObservabilityRule) checkFile(parsed *domain.ParsedFile, path, rootDir string) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	for _, call := range parsed.Calls {
		switch {
		case r.cfg.FlagPrint && isPrintCall(call):
			issues = append(issues, r.newIssue(
				patternPrint, CodePrintCall, r.cfg.PrintSeverity, call, path, rootDir,
				fmt.Sprintf("direct console print call %s", calleeName(call)),
				"replace the print call with the project logging facade",
			))
		case r.cfg.FlagRawLogging && isRawLoggerCall(call):
			issues = append(issues, r.newIssue(
				patternRawLogging, CodeRawLogger, r.cfg.RawLoggingSeverity, call, path, rootDir,
				fmt.Sprintf("raw logger constructed via %s", calleeName(call)),
				"obtain loggers from the sanctioned logging facade instead of constructing them",
			))
		}
	}
	return issues
}

func (r *ObservabilityRule) newIssue(pattern, code string, severity domain.Severity, call domain.CallSite, path, rootDir, message, suggestion string) domain.ValidationIssue {
	rel := stablePath(path, rootDir)
	discriminator := fmt.Sprintf("%s_%d", pattern, call.Line)
	fp := Fingerprint(r.RuleID(), rel, discriminator)

	return domain.ValidationIssue{
		Severity:   severity,
		Message:    message,
		Code:       code,
		FilePath:   rel,
		LineNumber: call.Line,
		RuleName:   r.RuleID(),
		Suggestion: suggestion,
		Context: domain.NewContext(fp, calleeName(call),
			"pattern", pattern,
		),
	}
}

func isPrintCall(call domain.CallSite) bool {
	if call.Receiver == "" {
		return printBuiltins[call.Name]
	}
	return call.Receiver == "fmt" && printSelectors[call.Name]
}

func isRawLoggerCall(call domain.CallSite) bool {
	return loggerReceivers[call.Receiver] && loggerFactories[call.Name]
}

func calleeName(call domain.CallSite) string {
	if call.Receiver == "" {
		return call.Name
	}
	return call.Receiver + "." + call.Name
}
