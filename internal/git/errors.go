package git

import "errors"

var (
	ErrGitTool           = errors.New("git operation failed")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrInvalidBranchName = errors.New("invalid branch name")
	ErrRemoteURLRequired = errors.New("remote URL is required")
	ErrDetachedHead      = errors.New("HEAD is detached")
)

// ToolError carries the verbatim failure of the underlying Git tooling.
type ToolError struct {
	Op  Operation
	Err error
}

func newToolError(op Operation, err error) *ToolError {
	return &ToolError{Op: op, Err: err}
}

func (e *ToolError) Error() string {
	return e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func (e *ToolError) Is(target error) bool {
	return target == ErrGitTool //nolint:errorlint //sentinel identity
}
