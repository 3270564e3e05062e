package requester

import "encoding/json"

// Header is a single request header. Pairs with an empty key or value are skipped.
type Header struct {
	Key   string
	Value string
}

type Request struct {
	Method  string
	URL     string
	Headers []Header
	// Body is sent verbatim when it is a JSON string, as JSON otherwise.
	Body json.RawMessage
}

type Response struct {
	Status int
	// Data is the decoded JSON body, or the raw text when it is not JSON.
	Data any
}
