package scanner

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/archlint/archlint/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	"testdata":     true,
}

// FileScanner implements domain.RepositoryScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks rootDir and returns the corpus of Go files keyed by slash
// relative path, each with its import list. Imports are best effort: a file
// the import parse chokes on is still part of the corpus with an empty list,
// so rules can decide per file how to handle it.
func (s *FileScanner) Scan(rootDir string, excludePaths ...string) (domain.Corpus, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	corpus := make(domain.Corpus)

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] || extraSkip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".go") {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		key := filepath.ToSlash(relPath)

		corpus[key] = domain.FileImports{
			Path:    key,
			Imports: fileImports(path),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return corpus, nil
}

// fileImports reads just the import block of a file.
func fileImports(path string) []string {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return nil
	}

	var imports []string
	for _, imp := range file.Imports {
		imports = append(imports, strings.Trim(imp.Path.Value, `"`))
	}
	return imports
}
