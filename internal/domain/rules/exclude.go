package rules

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ShouldExclude reports whether filePath matches any of the glob patterns.
// When rootDir is set and filePath lies under it, the root-relative form is
// matched; otherwise the path is matched as given. A bare-name pattern (no
// slash) also matches the file's base name, so "conftest.py" excludes that
// file anywhere in the tree. An empty pattern list excludes nothing.
func ShouldExclude(filePath, rootDir string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	candidate := matchablePath(filePath, rootDir)
	base := path.Base(candidate)

	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, candidate); err == nil && ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, err := doublestar.Match(pattern, base); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// ShouldExcludeWithModules extends ShouldExclude with allow-listed module
// paths: a dotted module identifier ("core.logging") excludes a file when
// its segment sequence appears contiguously, as whole segments, in the
// file's module-path segments. Whole-segment matching, never substring:
// "cli" matches src/cli/commands.go but not src/public_client.go.
func ShouldExcludeWithModules(filePath, rootDir string, patterns, allowlistModules []string) bool {
	if ShouldExclude(filePath, rootDir, patterns) {
		return true
	}

	if len(allowlistModules) == 0 {
		return false
	}

	fileSegs := moduleSegments(matchablePath(filePath, rootDir))
	for _, module := range allowlistModules {
		if module == "" {
			continue
		}
		if containsSegments(fileSegs, strings.Split(module, ".")) {
			return true
		}
	}
	return false
}

// matchablePath computes the path form patterns are matched against: the
// root-relative path when one can be derived, else the path unchanged.
// Never fails; a file outside the root matches on its given form.
func matchablePath(filePath, rootDir string) string {
	normalized := filepath.ToSlash(filePath)
	if rootDir == "" {
		return normalized
	}

	rel, err := filepath.Rel(rootDir, filePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return normalized
	}
	return filepath.ToSlash(rel)
}

// moduleSegments interprets a slash path as a module path: one segment per
// directory plus the file name with its extension stripped.
func moduleSegments(slashPath string) []string {
	segs := strings.Split(slashPath, "/")
	if len(segs) == 0 {
		return segs
	}
	last := segs[len(segs)-1]
	if ext := path.Ext(last); ext != "" {
		segs[len(segs)-1] = strings.TrimSuffix(last, ext)
	}
	return segs
}

// containsSegments reports whether needle appears contiguously in haystack.
func containsSegments(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, seg := range needle {
			if haystack[i+j] != seg {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
