package repos

import (
	"context"
	"strings"

	"github.com/SakethSripada/DesktopDev/internal/git"
	"go.uber.org/zap"
)

type commitState string

const (
	stateIdle          commitState = "idle"
	stateStatusChecked commitState = "status_checked"
	stateStaging       commitState = "staging"
	stateReady         commitState = "ready_to_commit"
	stateCommitted     commitState = "committed"
)

// Commit runs the commit workflow under the workspace's exclusive lock:
// optional branch switch, status, staging of unstaged requested files (only
// with req.AutoStage), staged-set check and commit.
func (s *Service) Commit(ctx context.Context, req CommitRequest) (*git.CommitResult, error) {
	files := NormalizeFiles(req.Files)
	if len(files) == 0 {
		return nil, ErrNoFilesSpecified
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrCommitMessageRequired
	}

	path, err := s.resolver.Existing(req.Path)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(path)
	defer unlock()

	log := s.logger.With(zap.String("path", path))
	log.Info("commit requested",
		zap.String("state", string(stateIdle)),
		zap.Strings("files", files),
		zap.Bool("auto_stage", req.AutoStage))

	if err = s.switchBranch(ctx, path, req.TargetBranch); err != nil {
		log.Error("branch switch failed, commit aborted", zap.Error(err))
		return nil, err
	}

	changes, err := s.git.Status(ctx, path)
	if err != nil {
		return nil, err
	}
	log.Debug("status checked", zap.String("state", string(stateStatusChecked)))

	if unstaged := UnstagedFiles(changes, files); len(unstaged) > 0 {
		if !req.AutoStage {
			log.Info("requested files are not staged", zap.Strings("unstaged", unstaged))
			return nil, &FilesNotStagedError{Files: unstaged}
		}

		log.Info("staging requested files",
			zap.String("state", string(stateStaging)),
			zap.Strings("unstaged", unstaged))
		if err = s.git.Add(ctx, path, unstaged); err != nil {
			return nil, err
		}

		if changes, err = s.git.Status(ctx, path); err != nil {
			return nil, err
		}
	}

	if len(changes.Staged()) == 0 {
		return nil, ErrNothingStaged
	}
	log.Debug("ready to commit", zap.String("state", string(stateReady)))

	result, err := s.git.Commit(ctx, path, req.Message)
	if err != nil {
		return nil, err
	}

	log.Info("commit workflow finished",
		zap.String("state", string(stateCommitted)),
		zap.String("hash", result.Hash))

	return result, nil
}

// switchBranch checks out target when it differs from the current branch.
func (s *Service) switchBranch(ctx context.Context, path, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil
	}

	current, err := s.git.CurrentBranch(ctx, path)
	if err != nil {
		return err
	}
	if current == target {
		return nil
	}

	return s.git.Checkout(ctx, path, git.CheckoutRequest{Branch: target})
}
