package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	return NewService(Config{
		Timeout: 10 * time.Second,
		Author:  AuthorConfig{Name: "Test Author", Email: "test@example.com"},
	}, zaptest.NewLogger(t))
}

func requireGitBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(defaultBinary); err != nil {
		t.Skip("git executable not available")
	}
}

// initRepo creates a repository with one committed file.
func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	repoPath := filepath.Join(t.TempDir(), "repo")
	repo, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)

	writeFile(t, repoPath, "README.md", "hello\n")
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)
	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return repoPath, repo
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	full := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}
