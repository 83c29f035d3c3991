package llm

import (
	"encoding/json"
	"strings"

	"github.com/expensehub/expense-tracker/constants"
)

// SanitizeFields normalizes model output that is close to but not exactly
// our schema, so the overall document can still validate: currency casing,
// category synonyms, stray whitespace. Structural problems are left for the
// schema validator to reject.
func SanitizeFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var changed []string

	if v, ok := m["currency"].(string); ok {
		s := strings.ToUpper(strings.TrimSpace(v))
		if s != v {
			changed = append(changed, "currency")
		}
		m["currency"] = s
	}

	if v, ok := m["category"].(string); ok {
		if cat, matched := constants.Canonicalize(v); matched && string(cat) != v {
			changed = append(changed, "category")
			m["category"] = string(cat)
		} else if !matched {
			changed = append(changed, "category")
			m["category"] = string(constants.Other)
		}
	}

	for _, k := range []string{"vendor", "location", "details", "date"} {
		if v, ok := m[k].(string); ok {
			s := strings.TrimSpace(v)
			if s != v {
				changed = append(changed, k)
				m[k] = s
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return out, changed, nil
}
