package jobs

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
)

// NormalizePreferences converts a raw stored preference object into a normalized
// profile. List fields accept either an array or a comma-separated string. Role
// keywords and skills are lowercased, and minMatchScore defaults to 40 and is clamped
// to [0,100]. A nil raw value means no profile and returns nil.
func NormalizePreferences(raw map[string]any) *types.PreferenceProfile {
	if raw == nil {
		return nil
	}

	minScore := types.DefaultMinMatchScore
	if v, ok := raw["minMatchScore"].(float64); ok && !math.IsNaN(v) {
		minScore = int(math.Round(max(0, min(100, v))))
	} else if v, ok := raw["minMatchScore"].(int); ok {
		minScore = max(0, min(100, v))
	}

	experience, _ := raw["experienceLevel"].(string)

	return &types.PreferenceProfile{
		RoleKeywords:       lowerAll(normalizeList(raw["roleKeywords"])),
		PreferredLocations: normalizeList(raw["preferredLocations"]),
		PreferredMode:      normalizeList(raw["preferredMode"]),
		ExperienceLevel:    strings.TrimSpace(experience),
		Skills:             lowerAll(normalizeList(raw["skills"])),
		MinMatchScore:      minScore,
	}
}

// normalizeList accepts an array or a comma-separated string and returns trimmed,
// non-empty, de-duplicated values in input order.
func normalizeList(value any) []string {
	var parts []string
	switch v := value.(type) {
	case nil:
	case string:
		parts = strings.Split(v, ",")
	case []string:
		parts = v
	case []any:
		for _, item := range v {
			switch s := item.(type) {
			case string:
				parts = append(parts, s)
			case float64, int, bool:
				parts = append(parts, fmt.Sprint(s))
			}
		}
	case float64, int, bool:
		parts = strings.Split(fmt.Sprint(v), ",")
	}

	out := []string{}
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		lv := strings.ToLower(v)
		if seen[lv] {
			continue
		}
		seen[lv] = true
		out = append(out, lv)
	}
	return out
}

// LoadPreferences reads and normalizes the stored profile. It returns nil when no
// profile has been saved or the stored value is unreadable.
func LoadPreferences(s storage.Store) *types.PreferenceProfile {
	raw := storage.ReadJSON[map[string]any](s, storage.KeyJobPreferences, nil)
	return NormalizePreferences(raw)
}

// SavePreferences stores the raw preference object as entered. Normalization happens
// on every read.
func SavePreferences(s storage.Store, raw map[string]any) bool {
	return storage.WriteJSON(s, storage.KeyJobPreferences, raw)
}

// ClearPreferences deletes the stored profile. Scoring then reports no profile.
func ClearPreferences(s storage.Store) {
	storage.RemoveKey(s, storage.KeyJobPreferences)
}
