package roadmapgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/levelup/internal/llm"
	"github.com/abhisek/levelup/internal/roadmap"
)

// Purpose labels generator requests in the LLM audit log.
const Purpose = "roadmap-gen"

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate asks the provider for a roadmap for career. Any failure to get a
// decodable answer is reported as ErrGenerationFailed wrapping the cause.
func (g *LLMGenerator) Generate(ctx context.Context, career string) (*roadmap.Candidate, error) {
	career = strings.TrimSpace(career)
	if career == "" {
		return nil, ErrEmptyCareer
	}

	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(career, g.config)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if len(resp.Content) == 0 || string(resp.Content) == "null" {
		return nil, fmt.Errorf("%w: empty response from provider", ErrGenerationFailed)
	}

	var c roadmap.Candidate
	if err := json.Unmarshal(resp.Content, &c); err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrGenerationFailed, err)
	}

	return &c, nil
}
