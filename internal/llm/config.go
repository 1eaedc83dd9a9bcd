package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "groq", "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	Groq       GroqConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single LLM request when the
	// caller does not set a tighter deadline. Default: 45s.
	Timeout time.Duration
}

// GroqConfig holds Groq-specific configuration.
type GroqConfig struct {
	APIKey  string
	Model   string // Default: "llama-3.3-70b"
	BaseURL string // Default: "https://api.groq.com/openai/v1"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures inside a
// single pipeline attempt. The item pipeline runs its own bounded retry
// loop, so the default is a single attempt.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Groq: GroqConfig{
			Model: "llama-3.3-70b",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// providerFields locates the per-provider settings inside a Config. stdKey
// is the conventional variable such as GROQ_API_KEY; baseURL is nil for
// hosts that cannot be overridden. The providers slice is in the order
// DiscoverConfig probes.
type providerFields struct {
	name    string
	stdKey  string
	apiKey  func(*Config) *string
	model   func(*Config) *string
	baseURL func(*Config) *string
}

var providers = []providerFields{
	{
		name:    "groq",
		stdKey:  "GROQ_API_KEY",
		apiKey:  func(c *Config) *string { return &c.Groq.APIKey },
		model:   func(c *Config) *string { return &c.Groq.Model },
		baseURL: func(c *Config) *string { return &c.Groq.BaseURL },
	},
	{
		name:   "gemini",
		stdKey: "GEMINI_API_KEY",
		apiKey: func(c *Config) *string { return &c.Gemini.APIKey },
		model:  func(c *Config) *string { return &c.Gemini.Model },
	},
	{
		name:    "openai",
		stdKey:  "OPENAI_API_KEY",
		apiKey:  func(c *Config) *string { return &c.OpenAI.APIKey },
		model:   func(c *Config) *string { return &c.OpenAI.Model },
		baseURL: func(c *Config) *string { return &c.OpenAI.BaseURL },
	},
	{
		name:   "anthropic",
		stdKey: "ANTHROPIC_API_KEY",
		apiKey: func(c *Config) *string { return &c.Anthropic.APIKey },
		model:  func(c *Config) *string { return &c.Anthropic.Model },
	},
	{
		name:    "openrouter",
		stdKey:  "OPENROUTER_API_KEY",
		apiKey:  func(c *Config) *string { return &c.OpenRouter.APIKey },
		model:   func(c *Config) *string { return &c.OpenRouter.Model },
		baseURL: func(c *Config) *string { return &c.OpenRouter.BaseURL },
	},
}

func lookupProvider(name string) (providerFields, bool) {
	for _, p := range providers {
		if p.name == name {
			return p, true
		}
	}
	return providerFields{}, false
}

func envPrefix(provider string) string {
	return "ASSESSGEN_" + strings.ToUpper(provider) + "_"
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// ConfigFromEnv builds a Config from ASSESSGEN_* variables over the
// defaults: ASSESSGEN_LLM_PROVIDER, ASSESSGEN_<PROVIDER>_API_KEY, _MODEL
// and _BASE_URL, ASSESSGEN_LLM_TIMEOUT and ASSESSGEN_LLM_RETRIES.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "ASSESSGEN_LLM_PROVIDER")

	for _, p := range providers {
		prefix := envPrefix(p.name)
		setFromEnv(p.apiKey(&cfg), prefix+"API_KEY")
		setFromEnv(p.model(&cfg), prefix+"MODEL")
		if p.baseURL != nil {
			setFromEnv(p.baseURL(&cfg), prefix+"BASE_URL")
		}
	}

	if d, err := time.ParseDuration(os.Getenv("ASSESSGEN_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("ASSESSGEN_LLM_RETRIES")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	return cfg
}

// DiscoverConfig picks the first provider whose conventional key variable
// is set, probing Groq, Gemini, OpenAI, Anthropic, then OpenRouter.
func DiscoverConfig() (Config, bool) {
	for _, p := range providers {
		if k := os.Getenv(p.stdKey); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.name
			*p.apiKey(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// HasCredential reports whether the selected provider can be constructed.
// Without one the item pipeline goes straight to its template fallback.
func (c Config) HasCredential() bool {
	return c.Validate() == nil
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	p, ok := lookupProvider(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *p.apiKey(&c) == "" {
		return fmt.Errorf("%sAPI_KEY is required for the %s provider", envPrefix(p.name), p.name)
	}
	return nil
}
