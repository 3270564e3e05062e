package assistant

import "time"

type Config struct {
	APIURL       string
	APIKey       string
	Model        string
	MaxTokens    int
	SystemPrompt string
	Timeout      time.Duration
}
