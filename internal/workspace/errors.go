package workspace

import "errors"

var (
	ErrPathRequired          = errors.New("local path is required")
	ErrDirectoryNotFound     = errors.New("directory does not exist")
	ErrDestinationNotEmpty   = errors.New("destination path is not empty")
	ErrNotAGitRepository     = errors.New("directory is not a git repository")
	ErrDirectoryCreateFailed = errors.New("failed to create directory")
)
