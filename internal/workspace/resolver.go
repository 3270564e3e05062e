package workspace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v6"
	"go.uber.org/zap"
)

const dirPerm = 0o755

// Resolver turns user supplied paths into canonical workspace directories.
type Resolver struct {
	baseDir string

	logger *zap.Logger
}

func NewResolver(config Config, logger *zap.Logger) (*Resolver, error) {
	base := config.BaseDir
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to detect home directory: %w", err)
		}
		base = home
	}

	base, err := filepath.Abs(expandHome(base))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	return &Resolver{
		baseDir: base,
		logger:  logger,
	}, nil
}

// Resolve normalizes separators and relative segments. Relative paths are
// anchored at the configured base directory.
func (r *Resolver) Resolve(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrPathRequired
	}

	path := filepath.FromSlash(expandHome(raw))
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}

	return filepath.Clean(path), nil
}

// Existing resolves raw and requires it to be an existing directory.
func (r *Resolver) Existing(raw string) (string, error) {
	path, err := r.Resolve(raw)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
	}

	return path, nil
}

// PrepareClone makes sure raw can receive a clone: missing directories are
// created, existing ones must be empty.
func (r *Resolver) PrepareClone(raw string) (string, error) {
	path, err := r.Resolve(raw)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return "", fmt.Errorf("%w: %s is a file", ErrDestinationNotEmpty, path)
	case err == nil:
		empty, emptyErr := isEmptyDir(path)
		if emptyErr != nil {
			return "", fmt.Errorf("%w: %w", ErrDirectoryCreateFailed, emptyErr)
		}
		if !empty {
			r.logger.Warn("clone destination is not empty", zap.String("path", path))
			return "", fmt.Errorf("%w: %s", ErrDestinationNotEmpty, path)
		}
		return path, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("%w: %w", ErrDirectoryCreateFailed, err)
	}

	if mkErr := os.MkdirAll(path, dirPerm); mkErr != nil {
		r.logger.Error("failed to create directory", zap.String("path", path), zap.Error(mkErr))
		return "", fmt.Errorf("%w: %w", ErrDirectoryCreateFailed, mkErr)
	}

	r.logger.Info("directory created", zap.String("path", path))
	return path, nil
}

// Attach resolves raw and requires it to live inside a Git working tree.
func (r *Resolver) Attach(raw string) (string, error) {
	path, err := r.Existing(raw)
	if err != nil {
		return "", err
	}

	_, err = git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", fmt.Errorf("%w: %s", ErrNotAGitRepository, path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotAGitRepository, err)
	}

	return path, nil
}

func isEmptyDir(path string) (bool, error) {
	dir, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer dir.Close()

	if _, err = dir.Readdirnames(1); errors.Is(err, io.EOF) {
		return true, nil
	}

	return false, err
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
