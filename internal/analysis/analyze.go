package analysis

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonathan/placement-suite/internal/skills"
	"github.com/jonathan/placement-suite/internal/types"
)

// ErrEmptyJD is returned when there is no job description to analyze.
var ErrEmptyJD = errors.New("job description is required")

// ShortJDWarning is reported for descriptions under 200 characters.
const ShortJDWarning = "This JD is too short to analyze deeply. Paste full JD for better output."

// Input is one analysis request.
type Input struct {
	Company string
	Role    string
	JDText  string
}

// Result is a new canonical history entry plus non-blocking warnings.
type Result struct {
	Entry    types.AnalysisEntry
	Warnings []string
}

// Analyze runs every builder over the JD and returns a new canonical entry stamped
// with now. The base and final scores start equal and the confidence map empty.
func Analyze(in Input, now time.Time) (*Result, error) {
	if strings.TrimSpace(in.JDText) == "" {
		return nil, ErrEmptyJD
	}

	company := strings.TrimSpace(in.Company)
	role := strings.TrimSpace(in.Role)
	extracted := skills.Extract(in.JDText)
	intel := BuildCompanyIntel(company, in.JDText)
	base := ComputeReadinessScore(in.JDText, company, role, extracted)
	stamp := types.ISOTimestamp(now)

	entry := types.AnalysisEntry{
		SchemaVersion:      types.CurrentSchemaVersion,
		ID:                 uuid.NewString(),
		CreatedAt:          stamp,
		UpdatedAt:          stamp,
		Company:            company,
		Role:               role,
		JDText:             in.JDText,
		ExtractedSkills:    skills.ToCanonical(extracted),
		RoundMapping:       CanonicalRounds(BuildRoundMapping(intel, extracted)),
		Checklist:          BuildChecklist(extracted),
		Plan7Days:          BuildSevenDayPlan(extracted),
		Questions:          BuildLikelyQuestions(extracted),
		BaseScore:          base,
		FinalScore:         base,
		SkillConfidenceMap: map[string]string{},
		CompanyIntel:       intel,
	}

	res := &Result{Entry: entry, Warnings: []string{}}
	if utf8.RuneCountInString(in.JDText) < shortJDThreshold {
		res.Warnings = append(res.Warnings, ShortJDWarning)
	}
	return res, nil
}

// SetConfidence records a confidence level for skill and recomputes the final score
// over every skill of the entry. Unknown levels are stored as practice.
func SetConfidence(entry types.AnalysisEntry, skill, level string, now time.Time) types.AnalysisEntry {
	if level != types.ConfidenceKnow {
		level = types.ConfidencePractice
	}

	next := make(map[string]string, len(entry.SkillConfidenceMap)+1)
	for k, v := range entry.SkillConfidenceMap {
		next[k] = v
	}
	next[skill] = level

	entry.SkillConfidenceMap = next
	entry.FinalScore = ComputeAdjustedScore(entry.BaseScore, next, entry.ExtractedSkills.All())
	entry.UpdatedAt = types.ISOTimestamp(now)
	return entry
}

// Backfill rebuilds company intel and round mapping for entries saved before those
// fields existed. It reports whether anything changed.
func Backfill(entry *types.AnalysisEntry) bool {
	changed := false
	internal := skills.ToInternal(entry.ExtractedSkills)

	if entry.CompanyIntel == nil && (entry.Company != "" || entry.JDText != "") {
		entry.CompanyIntel = BuildCompanyIntel(entry.Company, entry.JDText)
		entry.RoundMapping = CanonicalRounds(BuildRoundMapping(entry.CompanyIntel, internal))
		changed = true
	}
	if len(entry.RoundMapping) == 0 {
		entry.RoundMapping = CanonicalRounds(BuildRoundMapping(entry.CompanyIntel, internal))
		changed = true
	}
	return changed
}
