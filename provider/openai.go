package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"kalibot/model"
)

// OpenAIProvider implements model.Provider using OpenAI's official API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI provider. baseURL and model fall back
// to the API default and gpt-4o-mini; the API key is required.
func NewOpenAIProvider(baseURL, apiKey, modelName string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAIProvider{
		client: client,
		model:  modelName,
	}, nil
}

// Complete implements model.Provider.Complete with a single non-streaming
// chat completion request.
func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt string, history []model.Message, opts model.CompletionOptions) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	for _, msg := range history {
		switch msg.Role {
		case model.RoleUser:
			messages = append(messages, openai.UserMessage(msg.Content))
		case model.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		case model.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(p.model),
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &model.NetworkError{Provider: "openai", Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// GetModel returns the current model name.
func (p *OpenAIProvider) GetModel() string {
	return p.model
}

// SetModel switches the model used for subsequent completions.
func (p *OpenAIProvider) SetModel(modelName string) {
	p.model = modelName
}

// Ping verifies connectivity by listing models.
func (p *OpenAIProvider) Ping(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx); err != nil {
		return &model.NetworkError{Provider: "openai", Err: err}
	}
	return nil
}
