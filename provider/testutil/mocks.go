package testutil

import (
	"context"
	"sync"

	"kalibot/model"
)

// MockProvider implements model.Provider for testing
type MockProvider struct {
	// Configurable responses
	CompleteFunc func(ctx context.Context, systemPrompt string, history []model.Message, opts model.CompletionOptions) (string, error)
	PingFunc     func(ctx context.Context) error

	// State
	currentModel string

	// Last call captured for assertions; guarded so concurrent callers
	// do not race the bookkeeping.
	mu               sync.Mutex
	LastSystemPrompt string
	LastHistory      []model.Message
	LastOptions      model.CompletionOptions
	CompleteCalls    int
}

// NewMockProvider creates a mock provider with default implementations
func NewMockProvider(modelName string) *MockProvider {
	mock := &MockProvider{
		currentModel: modelName,
	}
	mock.CompleteFunc = mock.defaultComplete
	mock.PingFunc = mock.defaultPing
	return mock
}

func (m *MockProvider) defaultComplete(ctx context.Context, systemPrompt string, history []model.Message, opts model.CompletionOptions) (string, error) {
	return `{"conversation": "Mock response"}`, nil
}

func (m *MockProvider) defaultPing(ctx context.Context) error {
	return nil
}

func (m *MockProvider) Complete(ctx context.Context, systemPrompt string, history []model.Message, opts model.CompletionOptions) (string, error) {
	m.mu.Lock()
	m.CompleteCalls++
	m.LastSystemPrompt = systemPrompt
	m.LastHistory = history
	m.LastOptions = opts
	m.mu.Unlock()
	return m.CompleteFunc(ctx, systemPrompt, history, opts)
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) SetModel(modelName string) {
	m.currentModel = modelName
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}
