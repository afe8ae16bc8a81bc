package skills

import (
	"slices"
	"strings"
)

// Extracted maps internal category keys to detected skills. Only categories with at
// least one hit are present.
type Extracted map[string][]string

// Extract scans jdText for every vocabulary item as a case-insensitive substring.
// Matching has no word boundaries, so short tokens such as "C" or "Go" also hit inside
// longer words. When nothing is found the result holds only the generic Other category.
func Extract(jdText string) Extracted {
	text := strings.ToLower(jdText)
	out := Extracted{}

	for _, cat := range Categories {
		var found []string
		for _, skill := range cat.Items {
			if strings.Contains(text, strings.ToLower(skill)) {
				found = append(found, skill)
			}
		}
		if len(found) > 0 {
			out[cat.Key] = found
		}
	}

	if len(out) == 0 {
		out[Other] = append([]string{}, GenericCompetencies...)
	}
	return out
}

// Has reports whether skill was detected in category.
func (e Extracted) Has(category, skill string) bool {
	return slices.Contains(e[category], skill)
}

// HasAny reports whether any of skills was detected in category.
func (e Extracted) HasAny(category string, skills ...string) bool {
	for _, s := range skills {
		if e.Has(category, s) {
			return true
		}
	}
	return false
}

// CategoryCount returns the number of categories present.
func (e Extracted) CategoryCount() int {
	return len(e)
}

// All returns every detected skill in vocabulary category order, followed by Other.
func (e Extracted) All() []string {
	var out []string
	for _, cat := range Categories {
		out = append(out, e[cat.Key]...)
	}
	return append(out, e[Other]...)
}
