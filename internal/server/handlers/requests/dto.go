package requests

import "encoding/json"

type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SendRequest represents an outbound request to replay.
type SendRequest struct {
	Method  string          `json:"method"`
	URL     string          `json:"url"     validate:"required"`
	Headers []Header        `json:"headers" validate:"dive"`
	Body    json.RawMessage `json:"body"    swaggertype:"object"`
}

// SendResponse carries the target's answer.
type SendResponse struct {
	Data   any `json:"data"`
	Status int `json:"status"`
}
