package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/archlint/archlint/internal/domain"
	"github.com/archlint/archlint/internal/domain/rules"
)

// LintService orchestrates the lint pipeline:
// load config → scan corpus → resolve repo identity → build rules → run engine.
type LintService struct {
	scanner      domain.RepositoryScanner
	analyzer     domain.CodeAnalyzer
	configLoader domain.ConfigLoader
	repoInfo     domain.RepoInspector
}

func NewLintService(
	scanner domain.RepositoryScanner,
	analyzer domain.CodeAnalyzer,
	configLoader domain.ConfigLoader,
	repoInfo domain.RepoInspector,
) *LintService {
	return &LintService{
		scanner:      scanner,
		analyzer:     analyzer,
		configLoader: configLoader,
		repoInfo:     repoInfo,
	}
}

// LintRepository runs the full configured rule set over the repository at
// rootDir and returns the deterministic issue list. Configuration and
// registration problems fail before any file is read.
func (s *LintService) LintRepository(ctx context.Context, rootDir string) (*domain.Report, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := s.configLoader.Load(absRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	registry, err := rules.BuildRegistry(cfg, s.analyzer)
	if err != nil {
		return nil, err
	}

	corpus, err := s.scanner.Scan(absRoot, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning repository: %w", err)
	}

	repoID := s.resolveRepoID(cfg, absRoot)

	engine := rules.NewEngine(registry)
	issues, err := engine.Run(ctx, corpus, repoID, absRoot)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		RepoID:      repoID,
		Root:        absRoot,
		Timestamp:   time.Now(),
		FilesLinted: len(corpus),
		Issues:      issues,
	}
	if s.repoInfo != nil && s.repoInfo.IsGitRepo(absRoot) {
		if hash, err := s.repoInfo.CommitHash(absRoot); err == nil {
			report.CommitHash = hash
		}
	}
	return report, nil
}

// resolveRepoID picks the repository identity: explicit config wins, then
// the origin remote slug, then the directory name.
func (s *LintService) resolveRepoID(cfg domain.LintConfig, absRoot string) string {
	if cfg.RepoID != "" {
		return cfg.RepoID
	}
	if s.repoInfo != nil && s.repoInfo.IsGitRepo(absRoot) {
		if url, err := s.repoInfo.RemoteURL(absRoot); err == nil {
			if id := domain.RepoIDFromRemote(url); id != "" {
				return id
			}
		}
	}
	return filepath.Base(absRoot)
}
