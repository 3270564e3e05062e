package assistant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SakethSripada/DesktopDev/internal/assistant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap/zaptest"
)

type capturedRequest struct {
	Auth     string
	Model    string              `json:"model"`
	Messages []assistant.Message `json:"messages"`
	Max      int                 `json:"max_tokens"`
}

func newCompletionServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(captured)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, captured
}

func newTestService(t *testing.T, url, key string) *assistant.Service {
	t.Helper()

	return assistant.NewService(assistant.Config{
		APIURL:       url,
		APIKey:       key,
		Model:        "test-model",
		MaxTokens:    300,
		SystemPrompt: "You are a helpful assistant.",
		Timeout:      5 * time.Second,
	}, &fasthttp.Client{}, zaptest.NewLogger(t))
}

func TestService_Generate(t *testing.T) {
	server, captured := newCompletionServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":"Hello!"},"finish_reason":"stop"}]}`)
	svc := newTestService(t, server.URL, "secret")

	reply, err := svc.Generate(context.Background(), "Hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello!", reply.Text)
	assert.False(t, reply.IsContinued)

	assert.Equal(t, "Bearer secret", captured.Auth)
	assert.Equal(t, "test-model", captured.Model)
	assert.Equal(t, 300, captured.Max)
	assert.Equal(t, []assistant.Message{
		{Role: assistant.RoleSystem, Content: "You are a helpful assistant."},
		{Role: assistant.RoleUser, Content: "Hi"},
	}, captured.Messages)
}

func TestService_ContinueKeepsLatestMessages(t *testing.T) {
	server, captured := newCompletionServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":"more"},"finish_reason":"length"}]}`)
	svc := newTestService(t, server.URL, "secret")

	history := []assistant.Message{
		{Role: assistant.RoleUser, Content: "1"},
		{Role: assistant.RoleAssistant, Content: "2"},
		{Role: assistant.RoleUser, Content: "3"},
		{Role: assistant.RoleAssistant, Content: "4"},
		{Role: "bogus", Content: "dropped"},
		{Role: assistant.RoleUser, Content: "5"},
		{Role: assistant.RoleAssistant, Content: "6"},
	}

	reply, err := svc.Continue(context.Background(), history)
	require.NoError(t, err)
	assert.True(t, reply.IsContinued)

	// system prompt + 5 latest valid messages + continuation instruction
	require.Len(t, captured.Messages, 7)
	assert.Equal(t, "2", captured.Messages[1].Content)
	assert.Equal(t, assistant.RoleUser, captured.Messages[6].Role)
}

func TestService_Errors(t *testing.T) {
	server, _ := newCompletionServer(t, http.StatusUnauthorized, `{"error":{"message":"bad key"}}`)

	_, err := newTestService(t, server.URL, "").Generate(context.Background(), "Hi", nil)
	require.ErrorIs(t, err, assistant.ErrNotConfigured)

	_, err = newTestService(t, server.URL, "secret").Generate(context.Background(), "  ", nil)
	require.ErrorIs(t, err, assistant.ErrEmptyPrompt)

	_, err = newTestService(t, server.URL, "secret").Generate(context.Background(), "Hi", nil)
	require.ErrorIs(t, err, assistant.ErrCompletionFailed)
	assert.Contains(t, err.Error(), "bad key")
}
