package model

import "context"

// Provider abstracts LLM provider implementations (Ollama, OpenAI, Anthropic)
// using provider-agnostic types from KaliBot's model layer.
//
// This interface is defined in the model package (not provider package) to
// avoid import cycles: provider implementations can import model, and the
// assistant can use the Provider interface without importing the provider
// package.
type Provider interface {
	// Complete sends the system prompt plus the role-tagged history (already
	// trimmed by the caller, newest message last) and returns the model's
	// full text reply. Transport failures, timeouts and non-2xx responses
	// are returned as *NetworkError.
	Complete(ctx context.Context, systemPrompt string, history []Message, opts CompletionOptions) (string, error)

	// GetModel returns the currently selected model name.
	GetModel() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// CompletionOptions carries the per-request model knobs. They are passed
// explicitly on every call; providers hold no hidden completion state.
type CompletionOptions struct {
	Temperature float64 // determinism knob in [0,1]
	MaxTokens   int     // output token cap
}
