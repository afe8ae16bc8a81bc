// Package history persists JD analysis runs and migrates older record shapes into the
// canonical AnalysisEntry.
package history

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jonathan/placement-suite/internal/skills"
	"github.com/jonathan/placement-suite/internal/types"
)

// IsValid reports whether a raw record can be loaded: it needs a non-empty string id
// and a string jdText.
func IsValid(raw any) bool {
	m, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	id, ok := m["id"].(string)
	if !ok || id == "" {
		return false
	}
	_, ok = m["jdText"].(string)
	return ok
}

// NormalizeEntry converts a raw record of any schema version into the canonical shape.
// Missing fields get empty defaults, legacy field names are read as fallbacks and
// unknown fields are dropped. Normalizing a canonical record returns it unchanged.
func NormalizeEntry(raw map[string]any) types.AnalysisEntry {
	createdAt := str(raw, "createdAt")
	updatedAt, ok := raw["updatedAt"].(string)
	if !ok {
		updatedAt = createdAt
	}

	base, ok := score(raw, "baseScore")
	if !ok {
		base, _ = score(raw, "readinessScore")
	}
	final, ok := score(raw, "finalScore")
	if !ok {
		if final, ok = score(raw, "adjustedReadinessScore"); !ok {
			final = base
		}
	}

	return types.AnalysisEntry{
		SchemaVersion:      types.CurrentSchemaVersion,
		ID:                 str(raw, "id"),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		Company:            str(raw, "company"),
		Role:               str(raw, "role"),
		JDText:             str(raw, "jdText"),
		ExtractedSkills:    normalizeSkills(raw["extractedSkills"]),
		RoundMapping:       normalizeRounds(raw["roundMapping"]),
		Checklist:          normalizeChecklist(raw["checklist"]),
		Plan7Days:          normalizePlan(raw),
		Questions:          stringList(raw["questions"]),
		BaseScore:          base,
		FinalScore:         final,
		SkillConfidenceMap: normalizeConfidence(raw["skillConfidenceMap"]),
		CompanyIntel:       normalizeIntel(raw["companyIntel"]),
	}
}

// Canonicalize re-normalizes a typed entry through its JSON form so that every slice
// and map is non-nil and the schema version is current.
func Canonicalize(entry types.AnalysisEntry) (types.AnalysisEntry, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return types.AnalysisEntry{}, fmt.Errorf("encode entry %s: %w", entry.ID, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.AnalysisEntry{}, fmt.Errorf("decode entry %s: %w", entry.ID, err)
	}
	return NormalizeEntry(raw), nil
}

func normalizeSkills(v any) types.SkillSet {
	m, _ := v.(map[string]any)
	extracted := skills.Extracted{}
	for key, items := range m {
		if _, known := skills.CanonicalKey(key); !known {
			continue
		}
		if list, ok := items.([]any); ok {
			extracted[key] = stringList(list)
		}
	}
	return skills.ToCanonical(extracted)
}

func normalizeRounds(v any) []types.RoundMappingItem {
	list, _ := v.([]any)
	out := make([]types.RoundMappingItem, 0, len(list))
	for _, item := range list {
		r, _ := item.(map[string]any)
		title, ok := r["roundTitle"].(string)
		if !ok {
			if title, ok = r["title"].(string); !ok {
				n, _ := num(r, "roundNumber")
				title = fmt.Sprintf("Round %d", n)
			}
		}
		out = append(out, types.RoundMappingItem{
			RoundTitle:   title,
			FocusAreas:   stringList(r["focusAreas"]),
			WhyItMatters: str(r, "whyItMatters"),
		})
	}
	return out
}

func normalizeChecklist(v any) []types.ChecklistRound {
	list, _ := v.([]any)
	out := make([]types.ChecklistRound, 0, len(list))
	for _, item := range list {
		c, _ := item.(map[string]any)
		title, ok := c["roundTitle"].(string)
		if !ok {
			title = str(c, "title")
		}
		out = append(out, types.ChecklistRound{RoundTitle: title, Items: stringList(c["items"])})
	}
	return out
}

func normalizePlan(raw map[string]any) []types.PlanDay {
	list, _ := raw["plan7Days"].([]any)
	if len(list) == 0 {
		list, _ = raw["plan"].([]any)
	}
	out := make([]types.PlanDay, 0, len(list))
	for _, item := range list {
		d, _ := item.(map[string]any)
		tasks, ok := d["tasks"].([]any)
		if !ok {
			tasks, _ = d["items"].([]any)
		}
		out = append(out, types.PlanDay{
			Day:   dayLabel(d["day"]),
			Focus: str(d, "focus"),
			Tasks: stringList(tasks),
		})
	}
	return out
}

func normalizeConfidence(v any) map[string]string {
	m, _ := v.(map[string]any)
	out := make(map[string]string, len(m))
	for skill, level := range m {
		if s, ok := level.(string); ok {
			out[skill] = s
		}
	}
	return out
}

func normalizeIntel(v any) *types.CompanyIntel {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return &types.CompanyIntel{
		CompanyName:        str(m, "companyName"),
		Industry:           str(m, "industry"),
		SizeCategory:       str(m, "sizeCategory"),
		Size:               types.CompanySize(str(m, "size")),
		TypicalHiringFocus: str(m, "typicalHiringFocus"),
	}
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// num reads a JSON number, rounding fractional scores.
func num(m map[string]any, key string) (int, bool) {
	f, ok := m[key].(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Round(f)), true
}

// score reads a readiness score, clamped to [0,100].
func score(m map[string]any, key string) (int, bool) {
	n, ok := num(m, key)
	if !ok {
		return 0, false
	}
	return max(0, min(100, n)), true
}

// dayLabel keeps string days and formats numeric ones written by older versions.
func dayLabel(v any) string {
	switch d := v.(type) {
	case string:
		return d
	case float64:
		return fmt.Sprint(d)
	}
	return ""
}

// stringList keeps the string elements of a JSON array. Anything else yields an empty list.
func stringList(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
