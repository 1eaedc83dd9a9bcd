package llm

import "errors"

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// groqModels holds short aliases for the Groq-hosted Llama models.
var groqModels = map[string]string{
	"llama-3.3-70b": "llama-3.3-70b-versatile",
	"llama-3.1-8b":  "llama-3.1-8b-instant",
}

// GroqProvider talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqProvider struct {
	*OpenAIProvider
}

// NewGroqProvider targets api.groq.com unless cfg.BaseURL overrides it.
func NewGroqProvider(cfg GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("groq API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}

	inner, err := newOpenAICompatible(cfg.APIKey, baseURL, resolveModel(cfg.Model, groqModels))
	if err != nil {
		return nil, err
	}

	return &GroqProvider{OpenAIProvider: inner}, nil
}
