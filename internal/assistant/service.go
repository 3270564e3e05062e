package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	continueWindow      = 5
	continueInstruction = "Continue exactly where your previous answer stopped."
	finishReasonLength  = "length"
)

// Service is a thin client for an OpenAI-compatible chat completions API.
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

// Generate answers prompt in the context of history. Either may be empty, not both.
func (s *Service) Generate(ctx context.Context, prompt string, history []Message) (*Reply, error) {
	messages := validMessages(history)
	if prompt = strings.TrimSpace(prompt); prompt != "" {
		messages = append(messages, Message{Role: RoleUser, Content: prompt})
	}
	if len(messages) == 0 {
		return nil, ErrEmptyPrompt
	}

	return s.complete(ctx, messages)
}

// Continue asks the model to extend its last answer, using the latest few
// messages of history as context.
func (s *Service) Continue(ctx context.Context, history []Message) (*Reply, error) {
	messages := validMessages(history)
	if len(messages) == 0 {
		return nil, ErrEmptyPrompt
	}
	if len(messages) > continueWindow {
		messages = messages[len(messages)-continueWindow:]
	}

	return s.complete(ctx, append(messages, Message{Role: RoleUser, Content: continueInstruction}))
}

func (s *Service) complete(ctx context.Context, messages []Message) (*Reply, error) {
	if s.config.APIKey == "" {
		return nil, ErrNotConfigured
	}

	if s.config.SystemPrompt != "" {
		messages = append([]Message{{Role: RoleSystem, Content: s.config.SystemPrompt}}, messages...)
	}

	payload, err := json.Marshal(completionRequest{
		Model:     s.config.Model,
		Messages:  messages,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.config.APIURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+s.config.APIKey)
	req.SetBody(payload)
	if timeout := s.timeout(ctx); timeout > 0 {
		req.SetTimeout(timeout)
	}

	s.logger.Debug("requesting completion", zap.String("model", s.config.Model), zap.Int("messages", len(messages)))

	if err = s.client.Do(req, resp); err != nil {
		s.logger.Error("completion request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	var body completionResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %w", ErrCompletionFailed, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		detail := fmt.Sprintf("status %d", resp.StatusCode())
		if body.Error != nil {
			detail = body.Error.Message
		}
		s.logger.Error("completion API returned an error", zap.Int("status", resp.StatusCode()), zap.String("detail", detail))
		return nil, fmt.Errorf("%w: %s", ErrCompletionFailed, detail)
	}

	if len(body.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", ErrCompletionFailed)
	}

	choice := body.Choices[0]
	return &Reply{
		Text:        choice.Message.Content,
		IsContinued: choice.FinishReason == finishReasonLength,
	}, nil
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

func validMessages(history []Message) []Message {
	return lo.Filter(history, func(m Message, _ int) bool {
		switch m.Role {
		case RoleUser, RoleAssistant, RoleSystem:
			return strings.TrimSpace(m.Content) != ""
		}
		return false
	})
}
