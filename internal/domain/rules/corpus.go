package rules

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/archlint/archlint/internal/domain"
)

// fileResult pairs a corpus path with whatever a per-file analysis produced.
type fileResult[T any] struct {
	Path  string
	Value T
}

// mapCorpus runs fn over every corpus file in parallel and returns the
// results ordered by path. Paths are sorted up front and each worker writes
// its own pre-assigned slot, so the merge needs no locks and the output
// order never depends on completion order. fn returning ok=false drops the
// file (excluded or unparsable); returning an error aborts the whole map.
// Cancellation is coarse-grained: the context is checked before each file.
func mapCorpus[T any](ctx context.Context, corpus domain.Corpus, fn func(path string) (T, bool, error)) ([]fileResult[T], error) {
	paths := make([]string, 0, len(corpus))
	for path := range corpus {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	results := make([]*fileResult[T], len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			value, ok, err := fn(path)
			if err != nil {
				return err
			}
			if ok {
				results[i] = &fileResult[T]{Path: path, Value: value}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]fileResult[T], 0, len(paths))
	for _, r := range results {
		if r != nil {
			kept = append(kept, *r)
		}
	}
	return kept, nil
}

// parseAt resolves a corpus path against the root directory for the
// analyzer. Corpus keys are repo-relative; the filesystem wants them
// anchored.
func parseAt(analyzer domain.CodeAnalyzer, rootDir, path string) (*domain.ParsedFile, error) {
	full := path
	if rootDir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(rootDir, path)
	}
	return analyzer.ParseFile(full)
}
