package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured response per call. Implementations
// talk to a vendor API; decorators add timeout, retry and audit logging.
type Provider interface {
	// Generate returns Content validated against req.Schema when one is set.
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

type Request struct {
	System   string
	Messages []Message
	// Schema, when set, switches the provider to its native structured
	// output mode.
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is the tool name for Anthropic and the schema name for OpenAI,
	// e.g. "skill-roadmap".
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content json.RawMessage
	Usage   Usage
	// Model is the model that actually served the request.
	Model string
	// StopReason is "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type purposeKey struct{}

// WithPurpose labels requests made with ctx, such as "roadmap-gen". The
// label ends up in logs and the audit store.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
