package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// message builds a Messages API reply with a single text block.
func message(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func apiError(kind string) map[string]any {
	return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": kind}}
}

// anthropicStub serves status and body for every request and records the
// decoded request bodies. SDK retries are off so error cases return at once.
func anthropicStub(t *testing.T, status int, body any) (*AnthropicProvider, *[]map[string]any) {
	t.Helper()
	var seen []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			seen = append(seen, req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(server.URL), option.WithMaxRetries(0))
	require.NoError(t, err)
	return p, &seen
}

func TestAnthropicProvider_Generate(t *testing.T) {
	p, seen := anthropicStub(t, http.StatusOK, message(`{"title":"Mise en place","minutes":15}`, "end_turn"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a career coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Career: Chef"}},
		Schema:    resourceSchema(),
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}, resp.Usage)
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5-20251001", resp.Model)

	require.Len(t, *seen, 1)
	sent := (*seen)[0]
	assert.Equal(t, "claude-haiku-4-5-20251001", sent["model"])
	assert.EqualValues(t, 256, sent["max_tokens"])
	assert.NotNil(t, sent["system"])
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		kind      string
		target    any
		transient bool
	}{
		{"rate limit", http.StatusTooManyRequests, "rate_limit_error", new(*ErrRateLimit), true},
		{"bad key", http.StatusUnauthorized, "authentication_error", new(*ErrUnauthorized), false},
		{"server error", http.StatusInternalServerError, "api_error", new(*ErrProviderUnavailable), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := anthropicStub(t, tt.status, apiError(tt.kind))
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "x"}},
				MaxTokens: 100,
			})
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.target)
			assert.Equal(t, tt.transient, Transient(err))
		})
	}
}

func TestAnthropicProvider_TruncatedOutput(t *testing.T) {
	p, _ := anthropicStub(t, http.StatusOK, message(`{"name":"Chef","nodes":[`, "max_tokens"))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Career: Chef"}},
		MaxTokens: 100,
		Schema:    resourceSchema(),
	})
	var maxTok *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
	assert.Equal(t, `{"name":"Chef","nodes":[`, string(maxTok.Content))
}

func TestAnthropicProvider_SchemaMismatch(t *testing.T) {
	p, _ := anthropicStub(t, http.StatusOK, message(`{"title":"no minutes"}`, "end_turn"))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Career: Chef"}},
		MaxTokens: 100,
		Schema:    resourceSchema(),
	})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestAnthropicModelAliases(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-20250514", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels))
	assert.Equal(t, "claude-opus-4-5", resolveModel("claude-opus-4-5", anthropicModels))

	_, err := NewAnthropicProvider(AnthropicConfig{})
	assert.Error(t, err)
}
