package itemgen

import "github.com/abhisek/assessgen/internal/llm"

// itemArraySchema is the shape every JSON completion must decode to before
// per-field validation: a list of objects.
var itemArraySchema = &llm.Schema{
	Name:        "assessment-items",
	Description: "A list of assessment items",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
		},
	},
}
