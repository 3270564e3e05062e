package repos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SakethSripada/DesktopDev/internal/git"
	"github.com/SakethSripada/DesktopDev/internal/registry"
	"github.com/SakethSripada/DesktopDev/internal/repos"
	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// spyAdapter is an in-memory GitAdapter recording the calls made to it.
type spyAdapter struct {
	branch   string
	branches map[string]bool
	changes  git.ChangeSet

	added     [][]string
	commits   []string
	checkouts []string

	checkoutErr error
	cloned      []git.CloneRequest

	// clean files are unchanged: adding them leaves the index as is
	clean map[string]bool
}

func newSpyAdapter(changes ...git.FileStatus) *spyAdapter {
	return &spyAdapter{
		branch:   "main",
		branches: map[string]bool{"main": true},
		changes:  changes,
	}
}

func (a *spyAdapter) Clone(_ context.Context, req git.CloneRequest) (*git.Repository, error) {
	a.cloned = append(a.cloned, req)
	return &git.Repository{Path: req.Directory, URL: req.URL}, nil
}

func (a *spyAdapter) Status(context.Context, string) (git.ChangeSet, error) {
	out := make(git.ChangeSet, len(a.changes))
	copy(out, a.changes)
	return out, nil
}

func (a *spyAdapter) Add(_ context.Context, _ string, files []string) error {
	a.added = append(a.added, files)
	for _, file := range files {
		if a.clean[file] {
			continue
		}
		found := false
		for i := range a.changes {
			if a.changes[i].Path == file {
				a.changes[i].Index = git.StateModified
				a.changes[i].WorkingTree = git.StateUnmodified
				found = true
			}
		}
		if !found {
			a.changes = append(a.changes, git.FileStatus{Path: file, Index: git.StateAdded})
		}
	}
	return nil
}

func (a *spyAdapter) Commit(_ context.Context, _ string, message string) (*git.CommitResult, error) {
	a.commits = append(a.commits, message)
	return &git.CommitResult{Hash: "abc123", Branch: a.branch}, nil
}

func (a *spyAdapter) Push(context.Context, string, git.RemoteRequest) (*git.PushResult, error) {
	return &git.PushResult{Remote: "origin", Branch: a.branch}, nil
}

func (a *spyAdapter) Pull(context.Context, string, git.RemoteRequest) (*git.PullResult, error) {
	return &git.PullResult{Remote: "origin", Branch: a.branch, UpToDate: true}, nil
}

func (a *spyAdapter) Stash(context.Context, string, string) (string, error) {
	return "Saved working directory", nil
}

func (a *spyAdapter) ListBranches(context.Context, string) (*git.BranchList, error) {
	list := &git.BranchList{Current: a.branch}
	for name := range a.branches {
		list.Branches = append(list.Branches, git.Branch{Name: name, IsCurrent: name == a.branch})
	}
	return list, nil
}

func (a *spyAdapter) CurrentBranch(context.Context, string) (string, error) {
	return a.branch, nil
}

func (a *spyAdapter) Checkout(_ context.Context, _ string, req git.CheckoutRequest) error {
	a.checkouts = append(a.checkouts, req.Branch)
	if a.checkoutErr != nil {
		return a.checkoutErr
	}
	a.branch = req.Branch
	return nil
}

type spyRegistry struct {
	drafts []registry.WorkspaceDraft
	err    error
}

func (r *spyRegistry) Remember(_ context.Context, draft registry.WorkspaceDraft) error {
	r.drafts = append(r.drafts, draft)
	return r.err
}

func newTestService(t *testing.T, adapter *spyAdapter) (*repos.Service, *spyRegistry, string) {
	t.Helper()

	base := t.TempDir()
	logger := zaptest.NewLogger(t)

	resolver, err := workspace.NewResolver(workspace.Config{BaseDir: base}, logger)
	require.NoError(t, err)

	reg := &spyRegistry{}

	return repos.NewService(resolver, workspace.NewLocker(), adapter, reg, logger), reg, base
}

func TestCommit_ValidatesRequest(t *testing.T) {
	adapter := newSpyAdapter()
	svc, _, base := newTestService(t, adapter)

	_, err := svc.Commit(context.Background(), repos.CommitRequest{Path: base, Message: "msg", Files: []string{" ", ""}})
	require.ErrorIs(t, err, repos.ErrNoFilesSpecified)

	_, err = svc.Commit(context.Background(), repos.CommitRequest{Path: base, Message: "  ", Files: []string{"a.txt"}})
	require.ErrorIs(t, err, repos.ErrCommitMessageRequired)

	_, err = svc.Commit(context.Background(), repos.CommitRequest{Path: base + "/missing", Message: "msg", Files: []string{"a.txt"}})
	require.ErrorIs(t, err, workspace.ErrDirectoryNotFound)

	assert.Empty(t, adapter.commits)
}

func TestCommit_AllStaged(t *testing.T) {
	adapter := newSpyAdapter(
		git.FileStatus{Path: "a.txt", Index: git.StateModified, WorkingTree: git.StateUnmodified},
		git.FileStatus{Path: "b.txt", Index: git.StateAdded, WorkingTree: git.StateModified},
	)
	svc, _, base := newTestService(t, adapter)

	result, err := svc.Commit(context.Background(), repos.CommitRequest{
		Path:    base,
		Message: "Update",
		Files:   []string{"a.txt", "b.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.Hash)
	assert.Empty(t, adapter.added)
	assert.Equal(t, []string{"Update"}, adapter.commits)
}

func TestCommit_UnstagedWithoutAutoStage(t *testing.T) {
	adapter := newSpyAdapter(
		git.FileStatus{Path: "a.txt", Index: git.StateModified, WorkingTree: git.StateUnmodified},
		git.FileStatus{Path: "b.txt", Index: git.StateUnmodified, WorkingTree: git.StateModified},
	)
	svc, _, base := newTestService(t, adapter)

	_, err := svc.Commit(context.Background(), repos.CommitRequest{
		Path:    base,
		Message: "Update",
		Files:   []string{"a.txt", "b.txt", "c.txt"},
	})
	require.ErrorIs(t, err, repos.ErrFilesNotStaged)

	var notStaged *repos.FilesNotStagedError
	require.ErrorAs(t, err, &notStaged)
	assert.Equal(t, []string{"b.txt", "c.txt"}, notStaged.Files)
	assert.Empty(t, adapter.added)
	assert.Empty(t, adapter.commits)
}

func TestCommit_AutoStageStagesExactlyUnstaged(t *testing.T) {
	adapter := newSpyAdapter(
		git.FileStatus{Path: "a.txt", Index: git.StateModified, WorkingTree: git.StateUnmodified},
		git.FileStatus{Path: "b.txt", Index: git.StateUntracked, WorkingTree: git.StateUntracked},
		git.FileStatus{Path: "other.txt", Index: git.StateUnmodified, WorkingTree: git.StateModified},
	)
	svc, _, base := newTestService(t, adapter)

	_, err := svc.Commit(context.Background(), repos.CommitRequest{
		Path:      base,
		Message:   "Update",
		Files:     []string{"a.txt", "b.txt", "b.txt"},
		AutoStage: true,
	})
	require.NoError(t, err)
	require.Len(t, adapter.added, 1)
	assert.Equal(t, []string{"b.txt"}, adapter.added[0])
	assert.Equal(t, []string{"Update"}, adapter.commits)
}

func TestCommit_NothingStaged(t *testing.T) {
	adapter := newSpyAdapter()
	adapter.clean = map[string]bool{"a.txt": true}
	svc, _, base := newTestService(t, adapter)

	_, err := svc.Commit(context.Background(), repos.CommitRequest{
		Path:      base,
		Message:   "Update",
		Files:     []string{"a.txt"},
		AutoStage: true,
	})
	require.ErrorIs(t, err, repos.ErrNothingStaged)
	assert.Equal(t, [][]string{{"a.txt"}}, adapter.added)
	assert.Empty(t, adapter.commits)
}

func TestCommit_SwitchesBranch(t *testing.T) {
	adapter := newSpyAdapter(git.FileStatus{Path: "a.txt", Index: git.StateAdded})
	svc, _, base := newTestService(t, adapter)

	result, err := svc.Commit(context.Background(), repos.CommitRequest{
		Path:         base,
		Message:      "Update",
		TargetBranch: "feature",
		Files:        []string{"a.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "feature", result.Branch)
	assert.Equal(t, []string{"feature"}, adapter.checkouts)

	_, err = svc.Commit(context.Background(), repos.CommitRequest{
		Path:         base,
		Message:      "Again",
		TargetBranch: "feature",
		Files:        []string{"a.txt"},
	})
	require.NoError(t, err)
	assert.Len(t, adapter.checkouts, 1, "no checkout when already on the target branch")
}

func TestCommit_FailedCheckoutAborts(t *testing.T) {
	adapter := newSpyAdapter(git.FileStatus{Path: "a.txt", Index: git.StateAdded})
	adapter.checkoutErr = errors.New("conflict")
	svc, _, base := newTestService(t, adapter)

	_, err := svc.Commit(context.Background(), repos.CommitRequest{
		Path:         base,
		Message:      "Update",
		TargetBranch: "feature",
		Files:        []string{"a.txt"},
	})
	require.EqualError(t, err, "conflict")
	assert.Empty(t, adapter.commits)
}

func TestStage(t *testing.T) {
	adapter := newSpyAdapter(git.FileStatus{Path: "a.txt", Index: git.StateUnmodified, WorkingTree: git.StateModified})
	svc, _, base := newTestService(t, adapter)

	_, err := svc.Stage(context.Background(), base, []string{"  "})
	require.ErrorIs(t, err, repos.ErrNoFilesToStage)

	changes, err := svc.Stage(context.Background(), base, []string{"a.txt", "./a.txt"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a.txt"}}, adapter.added)

	entry, ok := changes.Lookup("a.txt")
	require.True(t, ok)
	assert.True(t, entry.Index.Staged())
}

func TestConnect(t *testing.T) {
	adapter := newSpyAdapter()
	svc, reg, base := newTestService(t, adapter)

	repo, err := svc.Connect(context.Background(), repos.ConnectRequest{
		URL:  "github.com/user/repo.git",
		Path: "projects/repo",
	})
	require.NoError(t, err)
	assert.Equal(t, base+"/projects/repo", repo.Path)
	require.Len(t, adapter.cloned, 1)
	assert.DirExists(t, repo.Path)

	require.Len(t, reg.drafts, 1)
	assert.Equal(t, registry.KindCloned, reg.drafts[0].Kind)
	assert.Equal(t, repo.Path, reg.drafts[0].Path)
}

func TestConnect_RegistryFailureIsNotFatal(t *testing.T) {
	adapter := newSpyAdapter()
	svc, reg, _ := newTestService(t, adapter)
	reg.err = errors.New("disk full")

	_, err := svc.Connect(context.Background(), repos.ConnectRequest{URL: "https://example.com/r.git", Path: "r"})
	require.NoError(t, err)
}

func TestConnectExisting_NotARepository(t *testing.T) {
	adapter := newSpyAdapter()
	svc, reg, base := newTestService(t, adapter)

	_, err := svc.ConnectExisting(context.Background(), base)
	require.ErrorIs(t, err, workspace.ErrNotAGitRepository)
	assert.Empty(t, reg.drafts)
}
