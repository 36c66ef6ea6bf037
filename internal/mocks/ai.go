package mocks

import (
	"context"
	"fmt"

	"github.com/meagherphilip/blogsmith/internal/ai"
)

// MockAIClient returns scripted responses in order. Once the script runs
// out it repeats the last response, or fails if no responses were given.
type MockAIClient struct {
	Responses []string
	Err       error
	Prompts   []string
	calls     int
}

// Verify interface compliance
var _ ai.Client = (*MockAIClient)(nil)

func NewMockAIClient(responses ...string) *MockAIClient {
	return &MockAIClient{Responses: responses}
}

func (m *MockAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", fmt.Errorf("no scripted response")
	}
	idx := m.calls
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	m.calls++
	return m.Responses[idx], nil
}

func (m *MockAIClient) Model() string {
	return "mock-model"
}
