package repos

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFilesSpecified      = errors.New("no files specified to commit")
	ErrNoFilesToStage        = errors.New("no files specified to stage")
	ErrCommitMessageRequired = errors.New("commit message is required")
	ErrFilesNotStaged        = errors.New("one or more files are not staged")
	ErrNothingStaged         = errors.New("no files staged for commit")
)

// FilesNotStagedError is recoverable: the client may retry the same commit
// with auto-staging enabled or after staging Files itself.
type FilesNotStagedError struct {
	Files []string
}

func (e *FilesNotStagedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFilesNotStaged, strings.Join(e.Files, ", "))
}

func (e *FilesNotStagedError) Is(target error) bool {
	return target == ErrFilesNotStaged //nolint:errorlint //sentinel identity
}
