package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
// eventRepo may be nil.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *logger.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewGroqProvider(cfg.Groq)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo, log)
	retried := WithRetry(logged, cfg.Retry, log)

	return retried, nil
}

// ResolveConfig returns the ASSESSGEN_* configuration when it carries a
// credential, otherwise the first standard API key found in the
// environment. ok is false when no credential is available.
func ResolveConfig() (cfg Config, ok bool) {
	cfg = ConfigFromEnv()
	if cfg.HasCredential() {
		return cfg, true
	}
	discovered, found := DiscoverConfig()
	if !found {
		return cfg, false
	}
	// Keep the explicit timeout and retry settings.
	discovered.Timeout = cfg.Timeout
	discovered.Retry = cfg.Retry
	return discovered, true
}

// NewProviderFromEnv builds a provider from the environment. It returns
// (nil, nil) when no credential is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, log *logger.Logger) (Provider, error) {
	cfg, ok := ResolveConfig()
	if !ok {
		return nil, nil
	}
	return NewProvider(ctx, cfg, eventRepo, log)
}
