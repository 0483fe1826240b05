package provider

// ProviderType identifies which backend a Config describes.
type ProviderType string

const (
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOllama    ProviderType = "ollama"
)

// Config carries everything the factory needs to construct a provider.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string
}

// MapProviderIDToType resolves a config-file provider name to a ProviderType.
// Returns "" for unknown names; the factory reports those as errors.
func MapProviderIDToType(id string) ProviderType {
	switch id {
	case "openai":
		return ProviderTypeOpenAI
	case "anthropic", "claude":
		return ProviderTypeAnthropic
	case "ollama":
		return ProviderTypeOllama
	default:
		return ""
	}
}
