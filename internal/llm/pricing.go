package llm

import "strings"

// ModelCost is list pricing in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of one call.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// LookupCost finds pricing for a model ID as reported in the event log.
// OpenRouter IDs carry a vendor prefix ("openai/gpt-4o-mini") which is
// stripped before the lookup. Returns nil for unknown models.
func LookupCost(modelID string) *ModelCost {
	id := strings.ToLower(strings.TrimSpace(modelID))
	if c, ok := modelCosts[id]; ok {
		return &c
	}
	if _, bare, ok := strings.Cut(id, "/"); ok {
		if c, ok := modelCosts[bare]; ok {
			return &c
		}
	}
	return nil
}

// modelCosts covers the models the providers default to or alias, plus
// common alternatives. Prices from the vendors' public pages, 2026-09.
var modelCosts = map[string]ModelCost{
	// Groq
	"llama-3.3-70b-versatile":        {0.59, 0.79},
	"llama-3.1-8b-instant":           {0.05, 0.08},
	"meta-llama/llama-guard-4-12b":   {0.2, 0.2},
	"openai/gpt-oss-120b":            {0.15, 0.75},
	"openai/gpt-oss-20b":             {0.1, 0.5},
	"qwen/qwen3-32b":                 {0.29, 0.59},
	"moonshotai/kimi-k2-instruct":    {1, 3},
	"llama-3.3-70b-instruct":         {0.59, 0.79},
	"llama-4-scout-17b-16e-instruct": {0.11, 0.34},

	// Anthropic
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-haiku-4-5":           {1, 5},
	"claude-3-5-haiku-20241022":  {0.8, 4},
	"claude-3-haiku":             {0.25, 1.25},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-sonnet-4-5":          {3, 15},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	// Gemini
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-exp":  {0, 0},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.0-pro":        {1.25, 10},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}
