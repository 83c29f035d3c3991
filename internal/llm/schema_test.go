package llm

import "testing"

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildExpenseJSONSchema()

	valid := []byte(`{
		"date": "2026-03-14",
		"vendor": "Trattoria Roma",
		"amount": 54.20,
		"currency": "EUR",
		"category": "Meal",
		"location": "Rome",
		"details": "Dinner at Italian restaurant"
	}`)
	if err := ValidateJSONAgainstSchema(schema, valid); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	cases := []struct {
		name string
		doc  string
	}{
		{"missing vendor", `{"date":"2026-03-14","amount":10,"currency":"EUR","category":"Meal","location":"Rome","details":"x"}`},
		{"bad date format", `{"date":"14/03/2026","vendor":"x","amount":10,"currency":"EUR","category":"Meal","location":"Rome","details":"x"}`},
		{"negative amount", `{"date":"2026-03-14","vendor":"x","amount":-1,"currency":"EUR","category":"Meal","location":"Rome","details":"x"}`},
		{"unknown category", `{"date":"2026-03-14","vendor":"x","amount":10,"currency":"EUR","category":"Groceries","location":"Rome","details":"x"}`},
		{"extra field", `{"date":"2026-03-14","vendor":"x","amount":10,"currency":"EUR","category":"Meal","location":"Rome","details":"x","tip":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tc.doc)); err == nil {
				t.Fatal("invalid document accepted")
			}
		})
	}
}

func TestSanitizeFields(t *testing.T) {
	doc := []byte(`{"date":"2026-03-14","vendor":" Uber ","amount":23.5,"currency":"usd","category":"taxi","location":"Berlin","details":"Airport ride"}`)

	cleaned, changed, err := SanitizeFields(doc)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if len(changed) == 0 {
		t.Fatal("expected sanitize to report changes")
	}
	if err := ValidateJSONAgainstSchema(BuildExpenseJSONSchema(), cleaned); err != nil {
		t.Fatalf("sanitized document still invalid: %v", err)
	}
}
