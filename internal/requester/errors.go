package requester

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidURL    = errors.New("invalid url")
	ErrRequestFailed = errors.New("request failed")
)

// UpstreamError is returned when the target answered with a non-2xx status.
type UpstreamError struct {
	Status int
	Data   any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrRequestFailed //nolint:errorlint //sentinel identity
}
