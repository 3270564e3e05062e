package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/SakethSripada/DesktopDev/internal/workspace"
	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"go.uber.org/zap"
)

const scratchRefPrefix = "refs/desktopdev/fetch/"

// Service executes single Git primitives against one working tree. It holds
// no per-repository state; every call receives the canonical workspace path.
type Service struct {
	config Config
	cli    *cli

	logger *zap.Logger
}

// NewService creates a new GitService.
func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		cli:    newCLI(config.Binary),
		logger: logger,
	}
}

// Clone clones a repository into an existing empty directory.
func (s *Service) Clone(ctx context.Context, req CloneRequest) (_ *Repository, err error) {
	defer track(OpClone, time.Now(), &err)

	remoteURL := NormalizeRemoteURL(req.URL)
	s.logger.Info("cloning repository",
		zap.String("url", RedactURL(remoteURL)),
		zap.String("directory", req.Directory))

	auth, err := s.authMethod(remoteURL, req.Credentials)
	if err != nil {
		return nil, newToolError(OpClone, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = git.PlainCloneContext(ctx, req.Directory, &git.CloneOptions{
		URL:  remoteURL,
		Auth: auth,
	})
	if err != nil {
		s.logger.Error("failed to clone repository", zap.Error(err))
		return nil, newToolError(OpClone, err)
	}

	s.logger.Info("repository cloned successfully",
		zap.String("url", RedactURL(remoteURL)),
		zap.String("directory", req.Directory))

	return &Repository{
		Path: req.Directory,
		URL:  RedactURL(remoteURL),
	}, nil
}

// Status computes the ChangeSet of the working tree.
func (s *Service) Status(_ context.Context, path string) (_ ChangeSet, err error) {
	defer track(OpStatus, time.Now(), &err)

	_, worktree, err := s.openWorktree(OpStatus, path)
	if err != nil {
		return nil, err
	}

	changes, err := s.status(worktree)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("status computed",
		zap.String("path", path),
		zap.Int("count", len(changes)))

	return changes, nil
}

// Add stages files. Files deleted from the working tree are removed from the
// index instead.
func (s *Service) Add(_ context.Context, path string, files []string) (err error) {
	defer track(OpAdd, time.Now(), &err)

	s.logger.Info("staging files",
		zap.String("path", path),
		zap.Strings("files", files))

	_, worktree, err := s.openWorktree(OpAdd, path)
	if err != nil {
		return err
	}

	changes, err := s.status(worktree)
	if err != nil {
		return err
	}

	for _, file := range files {
		file = filepath.ToSlash(filepath.Clean(file))

		entry, ok := changes.Lookup(file)
		if ok && entry.WorkingTree == StateDeleted {
			_, err = worktree.Remove(file)
		} else {
			_, err = worktree.Add(file)
		}
		if err != nil {
			s.logger.Error("failed to stage file", zap.String("file", file), zap.Error(err))
			return newToolError(OpAdd, err)
		}
	}

	s.logger.Info("files staged",
		zap.String("path", path),
		zap.Int("count", len(files)))

	return nil
}

// Commit records the index as a new commit on the current branch.
func (s *Service) Commit(_ context.Context, path, message string) (_ *CommitResult, err error) {
	defer track(OpCommit, time.Now(), &err)

	s.logger.Info("committing",
		zap.String("path", path))

	repo, worktree, err := s.openWorktree(OpCommit, path)
	if err != nil {
		return nil, err
	}

	author := s.signature(repo)
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: author,
	})
	if err != nil {
		s.logger.Error("failed to commit", zap.Error(err))
		return nil, newToolError(OpCommit, err)
	}

	commit, err := repo.CommitObject(hash)
	if err != nil {
		return nil, newToolError(OpCommit, err)
	}

	result := &CommitResult{
		Hash:   hash.String(),
		Branch: currentBranch(repo),
		Root:   commit.NumParents() == 0,
		Author: fmt.Sprintf("%s <%s>", author.Name, author.Email),
	}

	stats, err := commit.Stats()
	if err != nil {
		s.logger.Warn("failed to compute commit stats", zap.Error(err))
	}
	for _, stat := range stats {
		result.Summary.Changes++
		result.Summary.Insertions += stat.Addition
		result.Summary.Deletions += stat.Deletion
	}

	s.logger.Info("commit created",
		zap.String("path", path),
		zap.String("hash", result.Hash),
		zap.String("branch", result.Branch))

	return result, nil
}

// Push sends a branch to a transient remote. Credentials are handed to the
// transport and the repository configuration is left untouched.
func (s *Service) Push(ctx context.Context, path string, req RemoteRequest) (_ *PushResult, err error) {
	defer track(OpPush, time.Now(), &err)

	repo, err := s.open(OpPush, path)
	if err != nil {
		return nil, err
	}

	remoteURL, branch, err := s.remoteTarget(repo, req)
	if err != nil {
		return nil, newToolError(OpPush, err)
	}

	s.logger.Info("pushing",
		zap.String("path", path),
		zap.String("remote", RedactURL(remoteURL)),
		zap.String("branch", branch))

	auth, err := s.authMethod(remoteURL, req.Credentials)
	if err != nil {
		return nil, newToolError(OpPush, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	refSpec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%[1]s:refs/heads/%[1]s", branch))
	err = newTransientRemote(repo, remoteURL).PushContext(ctx, &git.PushOptions{
		RemoteName: transientRemote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Auth:       auth,
	})

	result := &PushResult{
		Remote: RedactURL(remoteURL),
		Branch: branch,
	}
	switch {
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		result.UpToDate = true
	case err != nil:
		s.logger.Error("failed to push", zap.Error(err))
		return nil, newToolError(OpPush, err)
	}

	s.logger.Info("push completed",
		zap.String("path", path),
		zap.String("branch", branch),
		zap.Bool("up_to_date", result.UpToDate))

	return result, nil
}

// Pull fetches a branch from a transient remote and fast-forwards the
// checked-out branch to it.
func (s *Service) Pull(ctx context.Context, path string, req RemoteRequest) (_ *PullResult, err error) {
	defer track(OpPull, time.Now(), &err)

	repo, worktree, err := s.openWorktree(OpPull, path)
	if err != nil {
		return nil, err
	}

	remoteURL, branch, err := s.remoteTarget(repo, req)
	if err != nil {
		return nil, newToolError(OpPull, err)
	}

	s.logger.Info("pulling",
		zap.String("path", path),
		zap.String("remote", RedactURL(remoteURL)),
		zap.String("branch", branch))

	auth, err := s.authMethod(remoteURL, req.Credentials)
	if err != nil {
		return nil, newToolError(OpPull, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	scratch := plumbing.ReferenceName(scratchRefPrefix + branch)
	refSpec := gitconfig.RefSpec(fmt.Sprintf("+refs/heads/%s:%s", branch, scratch))
	err = newTransientRemote(repo, remoteURL).FetchContext(ctx, &git.FetchOptions{
		RemoteName: transientRemote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Auth:       auth,
	})
	defer func() {
		if rmErr := repo.Storer.RemoveReference(scratch); rmErr != nil {
			s.logger.Warn("failed to remove scratch reference", zap.Error(rmErr))
		}
	}()
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		s.logger.Error("failed to fetch", zap.Error(err))
		return nil, newToolError(OpPull, err)
	}

	fetched, err := repo.Reference(scratch, true)
	if err != nil {
		return nil, newToolError(OpPull, err)
	}

	result, err := s.fastForward(repo, worktree, fetched.Hash())
	if err != nil {
		s.logger.Error("failed to update working tree", zap.Error(err))
		return nil, newToolError(OpPull, err)
	}
	result.Remote = RedactURL(remoteURL)
	result.Branch = branch

	s.logger.Info("pull completed",
		zap.String("path", path),
		zap.String("branch", branch),
		zap.Bool("up_to_date", result.UpToDate),
		zap.Bool("fast_forward", result.FastForward))

	return result, nil
}

// Stash saves local modifications with the git executable.
func (s *Service) Stash(ctx context.Context, path, message string) (_ string, err error) {
	defer track(OpStash, time.Now(), &err)

	repo, err := s.open(OpStash, path)
	if err != nil {
		return "", err
	}

	s.logger.Info("stashing changes",
		zap.String("path", path),
		zap.String("message", message))

	author := s.signature(repo)
	args := []string{
		"-c", "user.name=" + author.Name,
		"-c", "user.email=" + author.Email,
		"stash", "push",
	}
	if message = strings.TrimSpace(message); message != "" {
		args = append(args, "-m", message)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	output, err := s.cli.run(ctx, path, args...)
	if err != nil {
		s.logger.Error("failed to stash changes", zap.Error(err))
		return "", newToolError(OpStash, err)
	}

	s.logger.Info("stash completed", zap.String("path", path))

	return output, nil
}

// ListBranches retrieves the local branches sorted by name.
func (s *Service) ListBranches(_ context.Context, path string) (_ *BranchList, err error) {
	defer track(OpBranches, time.Now(), &err)

	repo, err := s.open(OpBranches, path)
	if err != nil {
		return nil, err
	}

	branches, err := repo.Branches()
	if err != nil {
		s.logger.Error("failed to get branches", zap.Error(err))
		return nil, newToolError(OpBranches, err)
	}

	current := currentBranch(repo)
	list := &BranchList{Current: current, Branches: []Branch{}}
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		list.Branches = append(list.Branches, Branch{
			Name:      name,
			IsCurrent: name == current,
		})
		return nil
	})
	if err != nil {
		s.logger.Error("failed to iterate branches", zap.Error(err))
		return nil, newToolError(OpBranches, err)
	}

	slices.SortFunc(list.Branches, func(a, b Branch) int {
		return strings.Compare(a.Name, b.Name)
	})

	s.logger.Debug("branches retrieved",
		zap.String("path", path),
		zap.Int("count", len(list.Branches)))

	return list, nil
}

// CurrentBranch returns the checked-out branch name.
func (s *Service) CurrentBranch(_ context.Context, path string) (string, error) {
	repo, err := s.open(OpBranches, path)
	if err != nil {
		return "", err
	}

	return currentBranch(repo), nil
}

// Checkout switches the working tree to a local branch. A missing branch is
// created from origin's tracking branch when one exists, or from HEAD when
// req.Create is set. The switch runs through the git executable so local
// edits are carried over and a refused switch leaves HEAD untouched.
func (s *Service) Checkout(ctx context.Context, path string, req CheckoutRequest) (err error) {
	defer track(OpCheckout, time.Now(), &err)

	s.logger.Info("checking out branch",
		zap.String("path", path),
		zap.String("branch", req.Branch))

	name := plumbing.NewBranchReferenceName(req.Branch)
	if strings.HasPrefix(req.Branch, "-") || name.Validate() != nil {
		return newToolError(OpCheckout, fmt.Errorf("%w: %s", ErrInvalidBranchName, req.Branch))
	}

	repo, err := s.open(OpCheckout, path)
	if err != nil {
		return err
	}

	args := []string{"checkout", req.Branch, "--"}
	if _, refErr := repo.Reference(name, false); refErr != nil {
		tracking := plumbing.NewRemoteReferenceName(originRemote, req.Branch)
		_, trackErr := repo.Reference(tracking, true)
		switch {
		case trackErr == nil:
			args = []string{"checkout", "-b", req.Branch, "--track", tracking.Short()}
		case req.Create:
			args = []string{"checkout", "-b", req.Branch}
		default:
			return newToolError(OpCheckout, fmt.Errorf("%w: %s", ErrBranchNotFound, req.Branch))
		}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err = s.cli.run(ctx, path, args...); err != nil {
		s.logger.Error("failed to checkout branch", zap.Error(err))
		return newToolError(OpCheckout, err)
	}

	s.logger.Info("branch checked out",
		zap.String("path", path),
		zap.String("branch", req.Branch))

	return nil
}

func (s *Service) open(op Operation, path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", workspace.ErrNotAGitRepository, path)
	}
	if err != nil {
		s.logger.Error("failed to open repository", zap.String("path", path), zap.Error(err))
		return nil, newToolError(op, err)
	}

	return repo, nil
}

func (s *Service) openWorktree(op Operation, path string) (*git.Repository, *git.Worktree, error) {
	repo, err := s.open(op, path)
	if err != nil {
		return nil, nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		s.logger.Error("failed to get worktree", zap.Error(err))
		return nil, nil, newToolError(op, err)
	}

	return repo, worktree, nil
}

func (s *Service) status(worktree *git.Worktree) (ChangeSet, error) {
	status, err := worktree.Status()
	if err != nil {
		s.logger.Error("failed to get status", zap.Error(err))
		return nil, newToolError(OpStatus, err)
	}

	changes := make(ChangeSet, 0, len(status))
	for file, entry := range status {
		if entry.Staging == git.Unmodified && entry.Worktree == git.Unmodified {
			continue
		}
		changes = append(changes, FileStatus{
			Path:        file,
			Index:       State(entry.Staging),
			WorkingTree: State(entry.Worktree),
		})
	}

	slices.SortFunc(changes, func(a, b FileStatus) int {
		return strings.Compare(a.Path, b.Path)
	})

	return changes, nil
}

func (s *Service) remoteTarget(repo *git.Repository, req RemoteRequest) (string, string, error) {
	remoteURL, err := resolveRemoteURL(repo, req.URL)
	if err != nil {
		return "", "", err
	}

	branch := strings.TrimSpace(req.Branch)
	if branch == "" {
		head, headErr := repo.Head()
		if headErr != nil {
			return "", "", fmt.Errorf("failed to get HEAD: %w", headErr)
		}
		if !head.Name().IsBranch() {
			return "", "", ErrDetachedHead
		}
		branch = head.Name().Short()
	}

	return remoteURL, branch, nil
}

func (s *Service) fastForward(repo *git.Repository, worktree *git.Worktree, target plumbing.Hash) (*PullResult, error) {
	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return s.initialize(repo, worktree, target)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	result := &PullResult{From: head.Hash().String(), To: target.String()}
	if head.Hash() == target {
		result.UpToDate = true
		return result, nil
	}

	local, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}
	remote, err := repo.CommitObject(target)
	if err != nil {
		return nil, err
	}

	if ahead, ancErr := remote.IsAncestor(local); ancErr != nil {
		return nil, ancErr
	} else if ahead {
		result.UpToDate = true
		result.To = result.From
		return result, nil
	}

	if ff, ancErr := local.IsAncestor(remote); ancErr != nil {
		return nil, ancErr
	} else if !ff {
		return nil, git.ErrNonFastForwardUpdate
	}

	if err = worktree.Reset(&git.ResetOptions{Commit: target, Mode: git.MergeReset}); err != nil {
		return nil, err
	}
	result.FastForward = true

	return result, nil
}

// initialize points an unborn branch at target and checks it out. Nothing is
// written while the working tree holds unstaged edits.
func (s *Service) initialize(repo *git.Repository, worktree *git.Worktree, target plumbing.Hash) (*PullResult, error) {
	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return nil, err
	}

	dirty, err := hasUnstagedChanges(worktree)
	if err != nil {
		return nil, err
	}
	if dirty {
		return nil, git.ErrUnstagedChanges
	}

	branch := plumbing.NewHashReference(head.Target(), target)
	if err = repo.Storer.SetReference(branch); err != nil {
		return nil, err
	}

	if err = worktree.Reset(&git.ResetOptions{Commit: target, Mode: git.MergeReset}); err != nil {
		if rmErr := repo.Storer.RemoveReference(branch.Name()); rmErr != nil {
			s.logger.Warn("failed to roll back branch", zap.String("branch", branch.Name().String()), zap.Error(rmErr))
		}
		return nil, err
	}

	return &PullResult{FastForward: true, To: target.String()}, nil
}

// hasUnstagedChanges reports tracked files whose working copy differs from the index.
func hasUnstagedChanges(worktree *git.Worktree) (bool, error) {
	status, err := worktree.Status()
	if err != nil {
		return false, err
	}

	for _, entry := range status {
		if entry.Worktree != git.Unmodified && entry.Worktree != git.Untracked {
			return true, nil
		}
	}

	return false, nil
}

// signature prefers the identity from git config and falls back to the
// configured author.
func (s *Service) signature(repo *git.Repository) *object.Signature {
	sig := &object.Signature{
		Name:  s.config.Author.Name,
		Email: s.config.Author.Email,
		When:  time.Now(),
	}

	cfg, err := repo.ConfigScoped(gitconfig.GlobalScope)
	if err != nil {
		s.logger.Debug("failed to load git config", zap.Error(err))
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}

	return sig
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.Timeout)
}

// currentBranch returns the branch HEAD points to, including unborn branches,
// or the abbreviated hash of a detached HEAD.
func currentBranch(repo *git.Repository) string {
	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return ""
	}

	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short()
	}

	hash := head.Hash().String()
	return hash[:7]
}
