package registry

import (
	"context"

	"go.uber.org/zap"
)

// Service keeps track of the workspaces the server has connected to. Git
// operations never depend on it.
type Service struct {
	workspaces *Repository

	logger *zap.Logger
}

func NewService(workspaces *Repository, logger *zap.Logger) *Service {
	return &Service{
		workspaces: workspaces,
		logger:     logger,
	}
}

// Remember records a connected workspace.
func (s *Service) Remember(ctx context.Context, draft WorkspaceDraft) error {
	workspace, err := s.workspaces.Upsert(ctx, draft)
	if err != nil {
		s.logger.Error("failed to remember workspace", zap.String("path", draft.Path), zap.Error(err))
		return err
	}

	s.logger.Info("workspace remembered",
		zap.String("id", workspace.ID.String()),
		zap.String("path", workspace.Path),
		zap.String("kind", string(workspace.Kind)))

	return nil
}

// List returns the known workspaces.
func (s *Service) List(ctx context.Context) ([]Workspace, error) {
	s.logger.Debug("listing workspaces")

	return s.workspaces.List(ctx)
}

// Forget drops a workspace record. Files on disk are never touched.
func (s *Service) Forget(ctx context.Context, path string) error {
	s.logger.Info("forgetting workspace", zap.String("path", path))

	if err := s.workspaces.DeleteByPath(ctx, path); err != nil {
		s.logger.Error("failed to forget workspace", zap.String("path", path), zap.Error(err))
		return err
	}

	return nil
}
