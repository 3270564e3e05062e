package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const maxRedirects = 5

type Service struct {
	config Config
	client *fasthttp.Client

	logger *zap.Logger
}

func NewService(config Config, client *fasthttp.Client, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		client: client,

		logger: logger,
	}
}

// Do sends req and returns the target's answer. A non-2xx answer is reported
// as *UpstreamError carrying the decoded body.
func (s *Service) Do(ctx context.Context, req Request) (*Response, error) {
	target, err := normalizeURL(req.URL)
	if err != nil {
		return nil, err
	}

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = fasthttp.MethodGet
	}

	httpReq := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(httpReq)
	httpResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(httpResp)

	httpReq.SetRequestURI(target)
	httpReq.Header.SetMethod(method)
	for _, h := range req.Headers {
		if h.Key == "" || h.Value == "" {
			continue
		}
		httpReq.Header.Set(h.Key, h.Value)
	}
	setBody(httpReq, req.Body)
	if timeout := s.timeout(ctx); timeout > 0 {
		httpReq.SetTimeout(timeout)
	}

	s.logger.Info("sending request", zap.String("method", method), zap.String("url", target))

	started := time.Now()
	if err = s.client.DoRedirects(httpReq, httpResp, maxRedirects); err != nil {
		s.logger.Error("request failed", zap.String("url", target), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	status := httpResp.StatusCode()
	data := decodeBody(httpResp.Header.ContentType(), httpResp.Body())

	s.logger.Info("request completed",
		zap.String("url", target),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(started)))

	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return nil, &UpstreamError{Status: status, Data: data}
	}

	return &Response{Status: status, Data: data}, nil
}

func (s *Service) timeout(ctx context.Context) time.Duration {
	timeout := s.config.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	return timeout
}

// normalizeURL prefixes http:// when the scheme is missing.
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return parsed.String(), nil
}

func setBody(req *fasthttp.Request, body json.RawMessage) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return
	}

	var text string
	if err := json.Unmarshal(body, &text); err == nil {
		if len(req.Header.ContentType()) == 0 {
			req.Header.SetContentType("text/plain; charset=utf-8")
		}
		req.SetBodyString(text)
		return
	}

	if len(req.Header.ContentType()) == 0 {
		req.Header.SetContentType("application/json")
	}
	req.SetBody(body)
}

func decodeBody(contentType, body []byte) any {
	if len(body) == 0 {
		return ""
	}

	if bytes.Contains(contentType, []byte("json")) {
		var data any
		if err := json.Unmarshal(body, &data); err == nil {
			return data
		}
	}

	return string(body)
}
