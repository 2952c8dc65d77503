package rules_test

import (
	"fmt"
	"sync"

	"github.com/archlint/archlint/internal/domain"
)

// fakeAnalyzer serves pre-built parse trees and counts accesses, so tests
// can assert that disabled rules never touch the corpus.
type fakeAnalyzer struct {
	mu    sync.Mutex
	files map[string]*domain.ParsedFile
	calls int
}

func newFakeAnalyzer(files map[string]*domain.ParsedFile) *fakeAnalyzer {
	return &fakeAnalyzer{files: files}
}

func (f *fakeAnalyzer) ParseFile(path string) (*domain.ParsedFile, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	parsed, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("parse error: %s", path)
	}
	return parsed, nil
}

func (f *fakeAnalyzer) parseCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// corpusOf builds a corpus whose keys are the given paths.
func corpusOf(paths ...string) domain.Corpus {
	corpus := make(domain.Corpus, len(paths))
	for _, p := range paths {
		corpus[p] = domain.FileImports{Path: p}
	}
	return corpus
}

// declares builds a parsed file containing a single type declaration.
func declares(path, typeName string, line int, bases ...string) *domain.ParsedFile {
	return &domain.ParsedFile{
		Path:    path,
		Package: "sample",
		Types: []domain.TypeDecl{
			{Name: typeName, Line: line, Kind: domain.TypeKindInterface, Bases: bases},
		},
	}
}
