package gitinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archlint/archlint/internal/adapters/outbound/gitinfo"
)

func TestIsGitRepo_FalseForPlainDir(t *testing.T) {
	g := gitinfo.New()
	assert.False(t, g.IsGitRepo(t.TempDir()))
}

func TestCommitHash_ErrorsForPlainDir(t *testing.T) {
	g := gitinfo.New()
	_, err := g.CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestRemoteURL_ErrorsForPlainDir(t *testing.T) {
	g := gitinfo.New()
	_, err := g.RemoteURL(t.TempDir())
	assert.Error(t, err)
}
