package repos

import (
	"context"

	"github.com/SakethSripada/DesktopDev/internal/git"
	"github.com/SakethSripada/DesktopDev/internal/registry"
)

// ConnectRequest asks to clone URL into Path.
type ConnectRequest struct {
	URL         string
	Path        string
	Credentials git.Credentials
}

// CommitRequest is consumed once by the commit workflow.
type CommitRequest struct {
	Path         string
	Message      string
	TargetBranch string   // Optional, checked out before staging when it differs from the current branch
	Files        []string // Ordered, as requested by the client
	AutoStage    bool
}

// GitAdapter represents the interface for Git primitives.
type GitAdapter interface {
	Clone(ctx context.Context, req git.CloneRequest) (*git.Repository, error)
	Status(ctx context.Context, path string) (git.ChangeSet, error)
	Add(ctx context.Context, path string, files []string) error
	Commit(ctx context.Context, path, message string) (*git.CommitResult, error)
	Push(ctx context.Context, path string, req git.RemoteRequest) (*git.PushResult, error)
	Pull(ctx context.Context, path string, req git.RemoteRequest) (*git.PullResult, error)
	Stash(ctx context.Context, path, message string) (string, error)
	ListBranches(ctx context.Context, path string) (*git.BranchList, error)
	CurrentBranch(ctx context.Context, path string) (string, error)
	Checkout(ctx context.Context, path string, req git.CheckoutRequest) error
}

// Registry records connected workspaces.
type Registry interface {
	Remember(ctx context.Context, draft registry.WorkspaceDraft) error
}
