package provider

import (
	"testing"
)

func TestMapProviderIDToType(t *testing.T) {
	tests := []struct {
		id   string
		want ProviderType
	}{
		{"openai", ProviderTypeOpenAI},
		{"anthropic", ProviderTypeAnthropic},
		{"claude", ProviderTypeAnthropic},
		{"ollama", ProviderTypeOllama},
		{"mystery", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MapProviderIDToType(tt.id); got != tt.want {
			t.Errorf("MapProviderIDToType(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestNewProviderUnknownType(t *testing.T) {
	_, err := NewProvider(Config{Type: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unknown provider type, got nil")
	}
}

func TestNewProviderRequiresAPIKeys(t *testing.T) {
	cases := []Config{
		{Type: ProviderTypeOpenAI, Model: "gpt-4o-mini"},
		{Type: ProviderTypeAnthropic, Model: "claude-sonnet-4-5"},
	}
	for _, cfg := range cases {
		if _, err := NewProvider(cfg); err == nil {
			t.Errorf("NewProvider(%s) without API key succeeded, want error", cfg.Type)
		}
	}
}

func TestNewOllamaProviderDefaults(t *testing.T) {
	p, err := NewOllamaProvider("", "")
	if err != nil {
		t.Fatalf("NewOllamaProvider() error: %v", err)
	}
	if got := p.GetModel(); got != "llama3.1:latest" {
		t.Errorf("default model = %q, want llama3.1:latest", got)
	}

	p.SetModel("codellama")
	if got := p.GetModel(); got != "codellama" {
		t.Errorf("after SetModel, GetModel() = %q", got)
	}
}

func TestNewOllamaProviderRejectsBadURL(t *testing.T) {
	if _, err := NewOllamaProvider("://not-a-url", ""); err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}
