package ai

import (
	"context"
	"fmt"
	"strings"
)

// Supported text-generation providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// NewClient creates the provider client selected by configuration.
func NewClient(ctx context.Context, provider, apiKey, baseURL, model string) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ProviderOpenAI:
		return NewOpenAI(apiKey, baseURL, model)
	case ProviderGemini:
		return NewGemini(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", provider)
	}
}
