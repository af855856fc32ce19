package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  *ModelCost
	}{
		{"gemini-2.0-flash", &ModelCost{0.1, 0.4}},
		{"gemini-2.0-flash-001", &ModelCost{0.1, 0.4}},
		{"gemini-2.0-flash-lite-001", &ModelCost{0.075, 0.3}},
		{"claude-haiku-4-5-20251001", &ModelCost{1, 5}},
		{"claude-sonnet-4-20250514", &ModelCost{3, 15}},
		{"claude-sonnet-4-5-20250929", &ModelCost{3, 15}},
		{"google/gemini-2.0-flash-exp", &ModelCost{0, 0}},
		{"gpt-4o-mini", &ModelCost{0.15, 0.6}},
		{"gpt-4o-mini-2024-07-18", &ModelCost{0.15, 0.6}},
		{"mock", nil},
		{"gemini-2.0", nil},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got := LookupCost(tt.model)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	assert.InDelta(t, 0.006, c.Cost(1000, 1000), 1e-9)
	assert.Zero(t, c.Cost(0, 0))
}
