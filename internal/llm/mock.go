package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
	// Delay holds the response back, honouring cancellation.
	Delay time.Duration
}

// MockProvider is a deterministic Provider for tests and offline runs.
// It returns canned responses in FIFO order and records all requests.
// When Repeat is set the last response is served again once the queue
// would otherwise be empty.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Repeat    bool
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewMockProviderFromFile serves the JSON document at path for every
// request. It backs LEVELUP_LLM_PROVIDER=mock with LEVELUP_MOCK_RESPONSE.
func NewMockProviderFromFile(path string) (*MockProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mock response: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("mock response %s is not valid JSON", path)
	}
	m := NewMockProvider(MockResponse{Content: json.RawMessage(data)})
	m.Repeat = true
	return m, nil
}

// Generate returns the next canned response, or ErrProviderUnavailable
// once the queue is exhausted.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, ok := m.next(req)
	if !ok {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("mock: no response queued")}
	}

	if resp.Delay > 0 {
		t := time.NewTimer(resp.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}
	if req.Schema != nil {
		content, err := validateResponse(req.Schema, resp.Content)
		if err != nil {
			return nil, err
		}
		resp.Content = content
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) next(req Request) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	switch {
	case len(m.responses) == 0:
		return MockResponse{}, false
	case len(m.responses) == 1 && m.Repeat:
		return m.responses[0], true
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, true
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
