package assistant

import "errors"

var (
	ErrNotConfigured    = errors.New("assistant api key is not configured")
	ErrEmptyPrompt      = errors.New("prompt or conversation history is required")
	ErrCompletionFailed = errors.New("error generating response")
)
