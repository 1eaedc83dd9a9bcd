package itemgen

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/assessgen/internal/items"
)

// Params are the per-kind generation parameters sent with every call.
type Params struct {
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64

	// Timeout bounds a single provider call.
	Timeout time.Duration
}

// Config controls the behavior of the Orchestrator.
type Config struct {
	// Params holds generation parameters per item kind.
	Params map[items.Kind]Params

	// MaxRetries is the number of LLM attempts before falling back.
	MaxRetries int

	// StrictMCQ raises the free-text parser's length thresholds.
	StrictMCQ bool

	// Validators is the ordered chain per kind. They execute in order;
	// the first failure stops the chain.
	Validators map[items.Kind][]Validator
}

// DefaultConfig returns a Config with the standard validator chains and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Params: map[items.Kind]Params{
			items.KindMCQ: {
				Temperature: 0.7,
				MaxTokens:   3000,
				Timeout:     30 * time.Second,
			},
			items.KindFillBlank: {
				Temperature: 0.7,
				MaxTokens:   4000,
				TopP:        0.9,
				Timeout:     45 * time.Second,
			},
			items.KindTrueFalse: {
				Temperature: 0.7,
				MaxTokens:   4000,
				TopP:        0.9,
				Timeout:     45 * time.Second,
			},
		},
		MaxRetries: 2,
		Validators: DefaultValidators(),
	}
}

// ParamsFor returns the parameters for kind, falling back to the MCQ
// defaults when the kind has no entry.
func (c Config) ParamsFor(kind items.Kind) Params {
	if p, ok := c.Params[kind]; ok {
		return p
	}
	return DefaultConfig().Params[items.KindMCQ]
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1, got %d", c.MaxRetries)
	}
	for kind, p := range c.Params {
		if p.MaxTokens <= 0 {
			return fmt.Errorf("%s: max_tokens must be positive", kind)
		}
		if p.Temperature < 0 || p.Temperature > 2 {
			return fmt.Errorf("%s: temperature %v out of range [0, 2]", kind, p.Temperature)
		}
		if p.TopP < 0 || p.TopP > 1 {
			return fmt.Errorf("%s: top_p %v out of range [0, 1]", kind, p.TopP)
		}
		if p.Timeout <= 0 {
			return fmt.Errorf("%s: timeout must be positive", kind)
		}
	}
	return nil
}

// fileConfig is the YAML override layout. Unset fields keep defaults.
type fileConfig struct {
	MaxRetries *int                  `yaml:"max_retries"`
	StrictMCQ  *bool                 `yaml:"strict_mcq"`
	Params     map[string]fileParams `yaml:"params"`
}

type fileParams struct {
	Temperature      *float64 `yaml:"temperature"`
	MaxTokens        *int     `yaml:"max_tokens"`
	TopP             *float64 `yaml:"top_p"`
	FrequencyPenalty *float64 `yaml:"frequency_penalty"`
	PresencePenalty  *float64 `yaml:"presence_penalty"`
	Timeout          string   `yaml:"timeout"`
}

// LoadConfigFile reads a YAML override file on top of DefaultConfig.
//
//	max_retries: 2
//	params:
//	  mcq:
//	    max_tokens: 3500
//	    timeout: 40s
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig applies YAML overrides on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if fc.MaxRetries != nil {
		cfg.MaxRetries = *fc.MaxRetries
	}
	if fc.StrictMCQ != nil {
		cfg.StrictMCQ = *fc.StrictMCQ
	}

	for name, fp := range fc.Params {
		kind, err := items.ParseKind(name)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: params: %w", err)
		}
		p := cfg.Params[kind]
		if fp.Temperature != nil {
			p.Temperature = *fp.Temperature
		}
		if fp.MaxTokens != nil {
			p.MaxTokens = *fp.MaxTokens
		}
		if fp.TopP != nil {
			p.TopP = *fp.TopP
		}
		if fp.FrequencyPenalty != nil {
			p.FrequencyPenalty = *fp.FrequencyPenalty
		}
		if fp.PresencePenalty != nil {
			p.PresencePenalty = *fp.PresencePenalty
		}
		if fp.Timeout != "" {
			d, err := time.ParseDuration(fp.Timeout)
			if err != nil {
				return Config{}, fmt.Errorf("parse config: %s timeout: %w", kind, err)
			}
			p.Timeout = d
		}
		cfg.Params[kind] = p
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
