package constants

import (
	"strings"
)

type Category string

const (
	Hotel     Category = "Hotel"
	Transport Category = "Transport"
	Meal      Category = "Meal"
	Other     Category = "Other"
)

var allCategories = []Category{
	Hotel,
	Transport,
	Meal,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"lodging":       Hotel,
		"accommodation": Hotel,
		"hostel":        Hotel,
		"guesthouse":    Hotel,
		"flight":        Transport,
		"airline":       Transport,
		"taxi":          Transport,
		"uber":          Transport,
		"train":         Transport,
		"rideshare":     Transport,
		"restaurant":    Meal,
		"food":          Meal,
		"dining":        Meal,
		"breakfast":     Meal,
		"lunch":         Meal,
		"dinner":        Meal,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
