package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SakethSripada/DesktopDev/internal/workspace"
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Service gives the assistant UI access to files inside a project directory.
// File paths are always confined to the project root.
type Service struct {
	config   Config
	resolver *workspace.Resolver
	locker   *workspace.Locker

	logger *zap.Logger
}

func NewService(config Config, resolver *workspace.Resolver, locker *workspace.Locker, logger *zap.Logger) *Service {
	return &Service{
		config:   config,
		resolver: resolver,
		locker:   locker,

		logger: logger,
	}
}

// ListFiles returns the sorted entry names of the project directory.
func (s *Service) ListFiles(_ context.Context, rawPath string) ([]string, error) {
	root, err := s.resolver.Existing(rawPath)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.RLock(root)
	defer unlock()

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	names := lo.Map(entries, func(e os.DirEntry, _ int) string { return e.Name() })
	sort.Strings(names)

	return names, nil
}

// ReadFile returns the content of filePath relative to the project root.
func (s *Service) ReadFile(_ context.Context, rawPath, filePath string) (string, error) {
	root, err := s.resolver.Existing(rawPath)
	if err != nil {
		return "", err
	}

	full, err := s.join(root, filePath)
	if err != nil {
		return "", err
	}

	unlock := s.locker.RLock(root)
	defer unlock()

	info, err := os.Stat(full)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, filePath)
	}
	if s.config.MaxFileSize > 0 && info.Size() > s.config.MaxFileSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size())
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(data), nil
}

// InsertCode writes code into fileName under the project directory, creating
// missing parent directories and replacing an existing file.
func (s *Service) InsertCode(_ context.Context, rawPath, fileName, code string) error {
	root, err := s.resolver.Existing(rawPath)
	if err != nil {
		return err
	}

	full, err := s.join(root, fileName)
	if err != nil {
		return err
	}

	unlock := s.locker.Lock(root)
	defer unlock()

	if err = os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err = os.WriteFile(full, []byte(code), filePerm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Info("code inserted", zap.String("path", root), zap.String("file", fileName), zap.Int("bytes", len(code)))

	return nil
}

func (s *Service) join(root, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrFilePathRequired
	}

	full, err := securejoin.SecureJoin(root, filepath.FromSlash(name))
	if err != nil {
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}
	if full == root {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, name)
	}

	return full, nil
}
