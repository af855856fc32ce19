package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), false},
		{"max tokens", &ErrMaxTokensExceeded{}, false},
		{"unauthorized", &ErrUnauthorized{Err: errors.New("401")}, false},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, true},
		{"unavailable", &ErrProviderUnavailable{}, true},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad")}, true},
		{"unknown", errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transient(tt.err))
		})
	}
}

func TestExplain(t *testing.T) {
	assert.Empty(t, Explain(nil))
	assert.Empty(t, Explain(errors.New("plain")))
	assert.Contains(t, Explain(fmt.Errorf("wrapped: %w", &ErrRateLimit{Err: errors.New("429")})), "rate limiting")
	assert.Contains(t, Explain(context.DeadlineExceeded), "too long")
	assert.Contains(t, Explain(&ErrMaxTokensExceeded{}), "cut off")
	assert.Contains(t, Explain(&ErrInvalidResponse{Err: errors.New("x")}), "roadmap format")
	assert.Contains(t, Explain(&ErrProviderUnavailable{}), "could not be reached")
	assert.Contains(t, Explain(&ErrUnauthorized{Err: errors.New("401")}), "rejected the API key")
}

func TestErrRateLimitMessage(t *testing.T) {
	assert.Equal(t, "rate limited: 429", (&ErrRateLimit{Err: errors.New("429")}).Error())
	assert.Contains(t, (&ErrRateLimit{RetryAfter: 2e9, Err: errors.New("429")}).Error(), "retry after 2s")
}

func TestErrorForStatus(t *testing.T) {
	cause := errors.New("api")

	var rl *ErrRateLimit
	assert.ErrorAs(t, errorForStatus(429, cause), &rl)

	var auth *ErrUnauthorized
	assert.ErrorAs(t, errorForStatus(401, cause), &auth)
	assert.ErrorAs(t, errorForStatus(403, cause), &auth)

	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, errorForStatus(503, cause), &unavail)
	assert.ErrorAs(t, errorForStatus(0, cause), &unavail)

	deadline := fmt.Errorf("post: %w", context.DeadlineExceeded)
	assert.Same(t, deadline, errorForStatus(0, deadline))
}
