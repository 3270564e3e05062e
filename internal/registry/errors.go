package registry

import "errors"

var ErrNotFound = errors.New("workspace not found")
