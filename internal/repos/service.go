package repos

import (
	"context"

	"github.com/SakethSripada/DesktopDev/internal/git"
	"github.com/SakethSripada/DesktopDev/internal/registry"
	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"go.uber.org/zap"
)

// Service runs workspace operations. Every call resolves the user path, takes
// the per-path lock and delegates to the Git adapter.
type Service struct {
	resolver *workspace.Resolver
	locker   *workspace.Locker
	git      GitAdapter
	registry Registry

	logger *zap.Logger
}

func NewService(
	resolver *workspace.Resolver,
	locker *workspace.Locker,
	gitAdapter GitAdapter,
	registry Registry,
	logger *zap.Logger,
) *Service {
	return &Service{
		resolver: resolver,
		locker:   locker,
		git:      gitAdapter,
		registry: registry,

		logger: logger,
	}
}

// Connect clones a repository into an empty or missing directory.
func (s *Service) Connect(ctx context.Context, req ConnectRequest) (*git.Repository, error) {
	path, err := s.resolver.Resolve(req.Path)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(path)
	defer unlock()

	if path, err = s.resolver.PrepareClone(path); err != nil {
		return nil, err
	}

	repo, err := s.git.Clone(ctx, git.CloneRequest{
		URL:         req.URL,
		Directory:   path,
		Credentials: req.Credentials,
	})
	if err != nil {
		return nil, err
	}

	s.remember(ctx, registry.WorkspaceDraft{Path: repo.Path, RemoteURL: repo.URL, Kind: registry.KindCloned})

	return repo, nil
}

// ConnectExisting attaches to a directory that already holds a repository.
func (s *Service) ConnectExisting(ctx context.Context, rawPath string) (string, error) {
	path, err := s.resolver.Attach(rawPath)
	if err != nil {
		return "", err
	}

	s.logger.Info("connected to existing repository", zap.String("path", path))
	s.remember(ctx, registry.WorkspaceDraft{Path: path, Kind: registry.KindAttached})

	return path, nil
}

// Status returns the current ChangeSet.
func (s *Service) Status(ctx context.Context, rawPath string) (git.ChangeSet, error) {
	path, err := s.resolver.Existing(rawPath)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.RLock(path)
	defer unlock()

	return s.git.Status(ctx, path)
}

// ListBranches returns the local branches and the current one.
func (s *Service) ListBranches(ctx context.Context, rawPath string) (*git.BranchList, error) {
	path, err := s.resolver.Existing(rawPath)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.RLock(path)
	defer unlock()

	return s.git.ListBranches(ctx, path)
}

// Checkout switches the workspace to another branch.
func (s *Service) Checkout(ctx context.Context, rawPath string, req git.CheckoutRequest) error {
	path, err := s.resolver.Existing(rawPath)
	if err != nil {
		return err
	}

	unlock := s.locker.Lock(path)
	defer unlock()

	return s.git.Checkout(ctx, path, req)
}

// Stage adds files to the index and returns the resulting ChangeSet.
func (s *Service) Stage(ctx context.Context, rawPath string, files []string) (git.ChangeSet, error) {
	files = NormalizeFiles(files)
	if len(files) == 0 {
		return nil, ErrNoFilesToStage
	}

	path, err := s.resolver.Existing(rawPath)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(path)
	defer unlock()

	if err = s.git.Add(ctx, path, files); err != nil {
		return nil, err
	}

	return s.git.Status(ctx, path)
}

// Push sends a branch to the remote described by req.
func (s *Service) Push(ctx context.Context, rawPath string, req git.RemoteRequest) (*git.PushResult, error) {
	path, err := s.resolver.Existing(rawPath)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(path)
	defer unlock()

	return s.git.Push(ctx, path, req)
}

// Pull fast-forwards the workspace from the remote described by req.
func (s *Service) Pull(ctx context.Context, rawPath string, req git.RemoteRequest) (*git.PullResult, error) {
	path, err := s.resolver.Existing(rawPath)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(path)
	defer unlock()

	return s.git.Pull(ctx, path, req)
}

// Stash shelves local modifications.
func (s *Service) Stash(ctx context.Context, rawPath, message string) (string, error) {
	path, err := s.resolver.Existing(rawPath)
	if err != nil {
		return "", err
	}

	unlock := s.locker.Lock(path)
	defer unlock()

	return s.git.Stash(ctx, path, message)
}

func (s *Service) remember(ctx context.Context, draft registry.WorkspaceDraft) {
	if err := s.registry.Remember(ctx, draft); err != nil {
		s.logger.Warn("failed to record workspace", zap.String("path", draft.Path), zap.Error(err))
	}
}
