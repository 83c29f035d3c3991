package llm

import "github.com/expensehub/expense-tracker/constants"

// BuildExpenseJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to OpenAI as a structured output constraint and
// also use it locally to validate the response.
func BuildExpenseJSONSchema() map[string]any {
	props := map[string]any{
		"date":     map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"vendor":   map[string]any{"type": "string", "minLength": 1},
		"amount":   map[string]any{"type": "number", "minimum": 0.0},
		"currency": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"category": map[string]any{
			"type": "string",
			"enum": constants.AsStringSlice(),
		},
		"location": map[string]any{"type": "string"},
		"details":  map[string]any{"type": "string"},
	}
	required := []string{"date", "vendor", "amount", "currency", "category", "location", "details"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
