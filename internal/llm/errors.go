package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// rejected the credentials.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrUnauthorized indicates the provider rejected the API key.
type ErrUnauthorized struct {
	Err error
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("LLM provider rejected the credentials: %v", e.Err)
}

func (e *ErrUnauthorized) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated at MaxTokens.
// A truncated roadmap is never valid JSON, so this is reported separately
// from ErrInvalidResponse.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Transient reports whether err may go away on a second attempt.
// Cancellation, deadlines and truncation are final. Invalid responses are
// transient because a second sample often conforms; RetryProvider still
// caps those at one extra attempt.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var (
		maxTok *ErrMaxTokensExceeded
		auth   *ErrUnauthorized
	)
	return !errors.As(err, &maxTok) && !errors.As(err, &auth)
}

// errorForStatus classifies a provider API error by its HTTP status code.
// A zero code means the status is unknown.
func errorForStatus(code int, err error) error {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return err
	case code == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &ErrUnauthorized{Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// Explain returns a one-line description of err suitable for showing to
// the user, or "" when err carries nothing beyond its own message.
func Explain(err error) string {
	var (
		rl      *ErrRateLimit
		inv     *ErrInvalidResponse
		unavail *ErrProviderUnavailable
		maxTok  *ErrMaxTokensExceeded
		auth    *ErrUnauthorized
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "The AI provider took too long to answer."
	case errors.Is(err, context.Canceled):
		return "The request was cancelled."
	case errors.As(err, &auth):
		return "The AI provider rejected the API key."
	case errors.As(err, &rl):
		return "The AI provider is rate limiting requests. Wait a moment before retrying."
	case errors.As(err, &maxTok):
		return "The generated roadmap was cut off before it was complete."
	case errors.As(err, &inv):
		return "The AI response did not match the roadmap format."
	case errors.As(err, &unavail):
		return "The AI provider could not be reached. Check the network and your API key."
	default:
		return ""
	}
}
