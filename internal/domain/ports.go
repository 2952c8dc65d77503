package domain

// RepositoryScanner walks a repository root and produces the file/import
// corpus consumed by every rule.
type RepositoryScanner interface {
	Scan(rootDir string, excludePaths ...string) (Corpus, error)
}

// CodeAnalyzer parses a single source file into its declaration/call view.
// Implementations return an error for unreadable or syntactically invalid
// files; callers decide whether that is fatal (rules skip such files).
type CodeAnalyzer interface {
	ParseFile(filePath string) (*ParsedFile, error)
}

// ConfigLoader resolves the lint configuration for a repository root.
type ConfigLoader interface {
	Load(rootDir string) (LintConfig, error)
}

// RepoInspector answers identity questions about the repository under lint.
type RepoInspector interface {
	IsGitRepo(rootDir string) bool
	CommitHash(rootDir string) (string, error)
	RemoteURL(rootDir string) (string, error)
}
