package llm

import "strings"

// Provider identifies the configured content generation backend.
type Provider string

const (
	// ProviderMock synthesises deterministic content locally without any
	// network call. It is also the fallback for unrecognised selectors.
	ProviderMock Provider = "mock"
	// ProviderOllama generates via a local model-serving HTTP endpoint.
	ProviderOllama Provider = "ollama"
	// ProviderOpenAI generates via a hosted chat-completions API.
	ProviderOpenAI Provider = "openai"
)

// ParseProvider maps a configured selector onto the closed provider set.
// Anything unrecognised falls back to the mock provider.
func ParseProvider(value string) Provider {
	switch Provider(strings.ToLower(strings.TrimSpace(value))) {
	case ProviderOllama:
		return ProviderOllama
	case ProviderOpenAI:
		return ProviderOpenAI
	default:
		return ProviderMock
	}
}
