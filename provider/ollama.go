package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"kalibot/model"
)

// OllamaProvider implements model.Provider against a local Ollama server.
type OllamaProvider struct {
	client *api.Client
	model  string
}

// NewOllamaProvider creates an Ollama provider. baseURL defaults to the
// local server, model to llama3.1.
func NewOllamaProvider(baseURL, modelName string) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if modelName == "" {
		modelName = "llama3.1:latest"
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL %q: %w", baseURL, err)
	}

	return &OllamaProvider{
		client: api.NewClient(parsedURL, http.DefaultClient),
		model:  modelName,
	}, nil
}

// Complete implements model.Provider.Complete with a single non-streaming
// chat request.
func (p *OllamaProvider) Complete(ctx context.Context, systemPrompt string, history []model.Message, opts model.CompletionOptions) (string, error) {
	messages := make([]api.Message, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, api.Message{Role: "system", Content: systemPrompt})
	}
	for _, msg := range history {
		messages = append(messages, api.Message{Role: msg.Role, Content: msg.Content})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    p.model,
		Messages: messages,
		Stream:   &stream,
		Options:  map[string]any{},
	}
	if opts.Temperature > 0 {
		req.Options["temperature"] = opts.Temperature
	}
	if opts.MaxTokens > 0 {
		req.Options["num_predict"] = opts.MaxTokens
	}

	var text strings.Builder
	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		text.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", &model.NetworkError{Provider: "ollama", Err: err}
	}
	return text.String(), nil
}

// GetModel returns the current model name.
func (p *OllamaProvider) GetModel() string {
	return p.model
}

// SetModel switches the model used for subsequent completions.
func (p *OllamaProvider) SetModel(modelName string) {
	p.model = modelName
}

// Ping verifies the server is reachable by listing local models.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	if _, err := p.client.List(ctx); err != nil {
		return &model.NetworkError{Provider: "ollama", Err: err}
	}
	return nil
}
