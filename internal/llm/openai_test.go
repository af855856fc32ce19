package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completion builds a chat completion body with one choice.
func completion(content, finish string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

// openAIStub serves status and body for every request and records the
// decoded request bodies.
func openAIStub(t *testing.T, status int, body any) (*OpenAIProvider, *[]openai.ChatCompletionRequest) {
	t.Helper()
	var seen []openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			seen = append(seen, req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	p, err := newOpenAIProviderRaw(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"}, nil)
	require.NoError(t, err)
	return p, &seen
}

func TestOpenAIProvider_Generate(t *testing.T) {
	p, seen := openAIStub(t, http.StatusOK, completion(`{"title":"Knife Skills 101","minutes":30,"type":"video"}`, "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a career coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Career: Chef"}},
		Schema:    resourceSchema(),
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, 25, resp.Usage.OutputTokens)
	assert.Equal(t, "end", resp.StopReason)
	assert.JSONEq(t, `{"title":"Knife Skills 101","minutes":30,"type":"video"}`, string(resp.Content))

	require.Len(t, *seen, 1)
	sent := (*seen)[0]
	require.Len(t, sent.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, sent.Messages[0].Role)
	assert.Equal(t, "Career: Chef", sent.Messages[1].Content)
	require.NotNil(t, sent.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONSchema, sent.ResponseFormat.Type)
	require.NotNil(t, sent.ResponseFormat.JSONSchema)
	assert.Equal(t, "test-resource", sent.ResponseFormat.JSONSchema.Name)
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"rate limit", http.StatusTooManyRequests, func(t *testing.T, err error) {
			var rl *ErrRateLimit
			assert.ErrorAs(t, err, &rl)
		}},
		{"bad key", http.StatusUnauthorized, func(t *testing.T, err error) {
			var auth *ErrUnauthorized
			assert.ErrorAs(t, err, &auth)
			assert.False(t, Transient(err))
		}},
		{"server error", http.StatusInternalServerError, func(t *testing.T, err error) {
			var unavail *ErrProviderUnavailable
			assert.ErrorAs(t, err, &unavail)
			assert.True(t, Transient(err))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := openAIStub(t, tt.status, map[string]any{
				"error": map[string]any{"type": "error", "message": tt.name},
			})
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	body := completion("", "stop")
	body["choices"] = []map[string]any{}
	p, _ := openAIStub(t, http.StatusOK, body)

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestOpenAIProvider_TruncatedOutput(t *testing.T) {
	p, _ := openAIStub(t, http.StatusOK, completion(`{"title":"Knife`, "length"))

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Career: Chef"}},
		Schema:   resourceSchema(),
	})
	var maxTok *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
	assert.Equal(t, `{"title":"Knife`, string(maxTok.Content))
	assert.False(t, Transient(err))
}

func TestOpenAIProvider_FencedJSONIsNormalized(t *testing.T) {
	p, _ := openAIStub(t, http.StatusOK, completion("```json\n{\"title\":\"MDN\",\"minutes\":5}\n```", "stop"))

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Career: Chef"}},
		Schema:   resourceSchema(),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"title":"MDN","minutes":5}`, string(resp.Content))
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	assert.Error(t, err)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4.1-mini", BaseURL: "https://example.test/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1-mini", p.ModelID())
}
