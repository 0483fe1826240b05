package assistant

import (
	"context"
	"errors"

	"kalibot/config"
	"kalibot/model"
)

// Assistant runs the provider round trip for one user message and parses the
// result. All collaborators are injected; the zero value is not usable.
type Assistant struct {
	provider     model.Provider
	store        *Store
	systemPrompt string
	opts         model.CompletionOptions
}

// NewAssistant wires an assistant. provider may be nil when no credential is
// configured; Chat then degrades to an error response instead of panicking.
func NewAssistant(provider model.Provider, store *Store, systemPrompt string, opts model.CompletionOptions) *Assistant {
	return &Assistant{
		provider:     provider,
		store:        store,
		systemPrompt: systemPrompt,
		opts:         opts,
	}
}

// Available reports whether a provider is configured.
func (a *Assistant) Available() bool {
	return a.provider != nil
}

// Chat sends the user's message with their recent history and returns the
// parsed routing decision. Provider and parse failures come back as Error
// responses so the transport always has something to render; the typed
// error is returned alongside for logging.
func (a *Assistant) Chat(ctx context.Context, userID int64, text string) (model.RoutedResponse, error) {
	if a.provider == nil {
		return model.ErrorResponse(
			"assistant unavailable",
			"configure an AI provider credential and restart",
		), nil
	}

	history := append(a.store.Recent(userID), model.Message{
		Role:    model.RoleUser,
		Content: text,
	})

	raw, err := a.provider.Complete(ctx, a.systemPrompt, history, a.opts)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("completion failed for user %d: %v", userID, err)
		}
		return model.ErrorResponse(
			"the AI provider did not answer",
			"try again in a moment or check connectivity",
		), err
	}

	// The exchange is recorded even when parsing fails: the model's raw
	// reply is still context for the next turn.
	a.store.Append(userID, model.RoleUser, text)
	a.store.Append(userID, model.RoleAssistant, raw)

	routed, err := ParseResponse(raw)
	if err != nil {
		var malformed *model.MalformedResponseError
		if errors.As(err, &malformed) && config.DebugLog != nil {
			config.DebugLog.Printf("malformed response for user %d: %s", userID, malformed.Raw)
		}
		return model.ErrorResponse(
			"could not understand the AI response",
			"rephrase your request; the model answered prose instead of a routing decision",
		), err
	}
	return routed, nil
}

// ClearContext drops the user's conversation history.
func (a *Assistant) ClearContext(userID int64) {
	a.store.Clear(userID)
}

// ContextSize reports how many messages are stored for the user.
func (a *Assistant) ContextSize(userID int64) int {
	return a.store.Len(userID)
}
