package project

import "errors"

var (
	ErrFilePathRequired = errors.New("valid file path is required")
	ErrNotAFile         = errors.New("path is not a regular file")
	ErrFileTooLarge     = errors.New("file is too large")
)
