package llm

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterAppTitle       = "assessgen"
)

// OpenRouterProvider routes through OpenRouter's OpenAI-compatible API.
// Model IDs are vendor-qualified ("meta-llama/llama-3.3-70b-instruct") and
// used as given.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = defaultOpenRouterBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	config.HTTPClient = &http.Client{
		Transport: &titleTransport{base: http.DefaultTransport, title: openRouterAppTitle},
	}

	return &OpenRouterProvider{OpenAIProvider: &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}}, nil
}

// titleTransport adds the X-Title header OpenRouter uses to attribute
// traffic to an application.
type titleTransport struct {
	base  http.RoundTripper
	title string
}

func (t *titleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("X-Title", t.title)
	return t.base.RoundTrip(r)
}
