package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.RepoInspector using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(rootDir string) bool {
	_, err := git.PlainOpen(rootDir)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(rootDir string) (string, error) {
	repo, err := git.PlainOpen(rootDir)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// RemoteURL returns the first URL of the origin remote.
func (g *GitInfoAdapter) RemoteURL(rootDir string) (string, error) {
	repo, err := git.PlainOpen(rootDir)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("getting origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}
	return urls[0], nil
}
