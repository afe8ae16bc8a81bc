package ats

import (
	"regexp"
	"slices"
	"strings"
)

// Bullet guidance messages.
const (
	AdviceActionVerb = "Start with a strong action verb."
	AdviceNumbers    = "Add measurable impact (numbers)."
)

// BulletActionVerbs are accepted as the first word of a bullet.
var BulletActionVerbs = []string{
	"built", "developed", "designed", "implemented", "led", "improved", "created", "optimized", "automated",
}

var (
	numericIndicator = regexp.MustCompile(`[\d%]|\b\d+[kKmM]?\b`)
	nonLetters       = regexp.MustCompile(`[^a-z]`)
)

// BulletLine is one non-empty line of a details block with its advice.
type BulletLine struct {
	Index       int      `json:"index"`
	Line        string   `json:"line"`
	Suggestions []string `json:"suggestions"`
}

// BulletSuggestions reports which advice applies to a single bullet. An empty bullet
// gets no advice.
func BulletSuggestions(text string) (needsActionVerb, needsNumbers bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, false
	}
	return !startsWithActionVerb(trimmed), !numericIndicator.MatchString(trimmed)
}

// BulletLines splits a details block into trimmed non-empty lines and attaches advice
// to each. Indexes are 1-based.
func BulletLines(block string) []BulletLine {
	out := []BulletLine{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		verb, numbers := BulletSuggestions(line)
		suggestions := []string{}
		if verb {
			suggestions = append(suggestions, AdviceActionVerb)
		}
		if numbers {
			suggestions = append(suggestions, AdviceNumbers)
		}
		out = append(out, BulletLine{Index: len(out) + 1, Line: line, Suggestions: suggestions})
	}
	return out
}

func startsWithActionVerb(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return true
	}
	word := nonLetters.ReplaceAllString(strings.ToLower(fields[0]), "")
	return slices.Contains(BulletActionVerbs, word)
}
