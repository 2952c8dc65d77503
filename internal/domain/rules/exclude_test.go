package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archlint/archlint/internal/domain/rules"
)

func TestShouldExclude_GlobPatterns(t *testing.T) {
	root := "/repo"

	assert.True(t, rules.ShouldExclude("/repo/tests/unit/test_foo.go", root, []string{"tests/**"}))
	assert.False(t, rules.ShouldExclude("/repo/src/module.go", root, []string{"tests/**"}))
	assert.True(t, rules.ShouldExclude("/repo/internal/gen/api.pb.go", root, []string{"**/*.pb.go"}))
}

func TestShouldExclude_BareNameMatchesAnywhere(t *testing.T) {
	assert.True(t, rules.ShouldExclude("/repo/pkg/deep/conftest.py", "/repo", []string{"conftest.py"}))
	assert.True(t, rules.ShouldExclude("conftest.py", "", []string{"conftest.py"}))
	assert.False(t, rules.ShouldExclude("/repo/pkg/conftest_helper.py", "/repo", []string{"conftest.py"}))
}

func TestShouldExclude_EmptyPatterns(t *testing.T) {
	assert.False(t, rules.ShouldExclude("/repo/a.go", "/repo", nil))
	assert.False(t, rules.ShouldExclude("/repo/a.go", "/repo", []string{}))
}

func TestShouldExclude_NoRootUsesPathAsGiven(t *testing.T) {
	assert.True(t, rules.ShouldExclude("tests/unit/foo.go", "", []string{"tests/**"}))
	assert.False(t, rules.ShouldExclude("src/foo.go", "", []string{"tests/**"}))
}

func TestShouldExclude_FileOutsideRootNeverPanics(t *testing.T) {
	// Falls back to matching on the unmodified path.
	assert.False(t, rules.ShouldExclude("/elsewhere/tests/foo.go", "/repo", []string{"tests/**"}))
	assert.True(t, rules.ShouldExclude("/elsewhere/tests/foo.go", "/repo", []string{"/elsewhere/tests/**"}))
}

func TestShouldExcludeWithModules_WholeSegmentNotSubstring(t *testing.T) {
	root := "/repo"

	// "cli" must match a path segment, not a substring of one.
	assert.False(t, rules.ShouldExcludeWithModules("/repo/src/public_client.go", root, nil, []string{"cli"}))
	assert.True(t, rules.ShouldExcludeWithModules("/repo/src/cli/commands.go", root, nil, []string{"cli"}))
}

func TestShouldExcludeWithModules_DottedModulePath(t *testing.T) {
	root := "/repo"
	allowlist := []string{"core.logging"}

	assert.True(t, rules.ShouldExcludeWithModules("/repo/src/core/logging/structured.go", root, nil, allowlist))
	// Segments must be contiguous.
	assert.False(t, rules.ShouldExcludeWithModules("/repo/src/core/http/logging.go", root, nil, allowlist))
	// The file name itself (minus extension) is a segment.
	assert.True(t, rules.ShouldExcludeWithModules("/repo/src/core/logging.go", root, nil, allowlist))
}

func TestShouldExcludeWithModules_EmptyAllowlist(t *testing.T) {
	assert.False(t, rules.ShouldExcludeWithModules("/repo/src/cli/commands.go", "/repo", nil, nil))
}

func TestShouldExcludeWithModules_GlobStillApplies(t *testing.T) {
	assert.True(t, rules.ShouldExcludeWithModules("/repo/tests/foo.go", "/repo", []string{"tests/**"}, nil))
}
