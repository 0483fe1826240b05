package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"kalibot/model"
	"kalibot/provider/testutil"
)

func TestChatWithoutProvider(t *testing.T) {
	a := NewAssistant(nil, NewStore(10), "prompt", model.CompletionOptions{})

	routed, err := a.Chat(context.Background(), 1, "scan something")
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if routed.Kind != model.KindError {
		t.Fatalf("Kind = %v, want KindError", routed.Kind)
	}
	if routed.Suggestion == "" {
		t.Error("degraded response should carry a suggestion")
	}
	if a.Available() {
		t.Error("Available() = true with nil provider")
	}
}

func TestChatRoundTrip(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model")
	mock.CompleteFunc = func(ctx context.Context, systemPrompt string, history []model.Message, opts model.CompletionOptions) (string, error) {
		return `{"tool": "nmap", "parameters": {"target": "10.0.0.5"}, "explanation": "scan"}`, nil
	}
	store := NewStore(10)
	a := NewAssistant(mock, store, "system prompt", model.CompletionOptions{Temperature: 0.3, MaxTokens: 800})

	routed, err := a.Chat(context.Background(), 7, "scan 10.0.0.5")
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if routed.Kind != model.KindTool || routed.ToolName != "nmap" {
		t.Errorf("routed = %+v", routed)
	}

	if mock.LastSystemPrompt != "system prompt" {
		t.Errorf("system prompt = %q", mock.LastSystemPrompt)
	}
	if mock.LastOptions.Temperature != 0.3 || mock.LastOptions.MaxTokens != 800 {
		t.Errorf("options = %+v", mock.LastOptions)
	}
	// The new user message rides along with history.
	if len(mock.LastHistory) != 1 || mock.LastHistory[0].Content != "scan 10.0.0.5" {
		t.Errorf("history = %+v", mock.LastHistory)
	}

	// Both sides of the exchange are recorded.
	if n := store.Len(7); n != 2 {
		t.Errorf("stored %d messages, want 2", n)
	}
}

func TestChatSendsRecentHistory(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model")
	store := NewStore(10)
	store.Append(7, model.RoleUser, "earlier question")
	store.Append(7, model.RoleAssistant, `{"conversation": "earlier answer"}`)
	a := NewAssistant(mock, store, "p", model.CompletionOptions{})

	if _, err := a.Chat(context.Background(), 7, "follow-up"); err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if len(mock.LastHistory) != 3 {
		t.Fatalf("sent %d history messages, want 3", len(mock.LastHistory))
	}
	if mock.LastHistory[2].Content != "follow-up" {
		t.Errorf("last message = %q", mock.LastHistory[2].Content)
	}
}

func TestChatProviderFailure(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model")
	netErr := &model.NetworkError{Provider: "openai", Err: errors.New("connection refused")}
	mock.CompleteFunc = func(ctx context.Context, systemPrompt string, history []model.Message, opts model.CompletionOptions) (string, error) {
		return "", netErr
	}
	store := NewStore(10)
	a := NewAssistant(mock, store, "p", model.CompletionOptions{})

	routed, err := a.Chat(context.Background(), 1, "scan")
	if routed.Kind != model.KindError {
		t.Errorf("Kind = %v, want KindError", routed.Kind)
	}
	if !errors.Is(err, netErr) {
		t.Errorf("err = %v, want wrapped network error", err)
	}
	// Failed round trips leave no partial history.
	if n := store.Len(1); n != 0 {
		t.Errorf("stored %d messages after failure, want 0", n)
	}
}

func TestChatMalformedReply(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model")
	mock.CompleteFunc = func(ctx context.Context, systemPrompt string, history []model.Message, opts model.CompletionOptions) (string, error) {
		return "Sure, I'll scan that for you!", nil
	}
	store := NewStore(10)
	a := NewAssistant(mock, store, "p", model.CompletionOptions{})

	routed, err := a.Chat(context.Background(), 1, "scan")
	if routed.Kind != model.KindError {
		t.Errorf("Kind = %v, want KindError", routed.Kind)
	}
	var malformed *model.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %T, want MalformedResponseError", err)
	}
	// The raw reply still lands in context for the next turn.
	if n := store.Len(1); n != 2 {
		t.Errorf("stored %d messages, want 2", n)
	}
}

func TestClearContext(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model")
	store := NewStore(10)
	a := NewAssistant(mock, store, "p", model.CompletionOptions{})

	if _, err := a.Chat(context.Background(), 1, "hello"); err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if a.ContextSize(1) == 0 {
		t.Fatal("context empty after chat")
	}
	a.ClearContext(1)
	if n := a.ContextSize(1); n != 0 {
		t.Errorf("context size after clear = %d", n)
	}
}

// Updates from different chats are handled on separate goroutines, so the
// assistant must tolerate concurrent users without mixing their contexts.
func TestChatConcurrentUsers(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model")
	store := NewStore(20)
	a := NewAssistant(mock, store, "p", model.CompletionOptions{})

	const users = 8
	const messages = 5

	var wg sync.WaitGroup
	for u := int64(1); u <= users; u++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			for i := 0; i < messages; i++ {
				if _, err := a.Chat(context.Background(), userID, fmt.Sprintf("msg-%d-%d", userID, i)); err != nil {
					t.Errorf("Chat(user %d) error: %v", userID, err)
				}
			}
		}(u)
	}
	wg.Wait()

	for u := int64(1); u <= users; u++ {
		if n := a.ContextSize(u); n != messages*2 {
			t.Errorf("user %d context size = %d, want %d", u, n, messages*2)
		}
		for _, msg := range store.Recent(u) {
			if msg.Role == model.RoleUser && !strings.HasPrefix(msg.Content, fmt.Sprintf("msg-%d-", u)) {
				t.Errorf("user %d history contains foreign message %q", u, msg.Content)
			}
		}
	}
}
