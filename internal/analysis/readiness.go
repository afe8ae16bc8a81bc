package analysis

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/placement-suite/internal/skills"
	"github.com/jonathan/placement-suite/internal/types"
)

// Readiness score components.
const (
	readinessBase     = 35
	pointsPerCategory = 5
	maxCategoryPoints = 30
	pointsCompany     = 10
	pointsRole        = 10
	pointsLongJD      = 10
	longJDThreshold   = 800
	confidenceStep    = 2
	shortJDThreshold  = 200
	weakSkillLimit    = 3
)

// ComputeReadinessScore returns the base readiness score of an analysis, capped at 100.
func ComputeReadinessScore(jdText, company, role string, extracted skills.Extracted) int {
	score := readinessBase
	score += min(extracted.CategoryCount()*pointsPerCategory, maxCategoryPoints)
	if strings.TrimSpace(company) != "" {
		score += pointsCompany
	}
	if strings.TrimSpace(role) != "" {
		score += pointsRole
	}
	if utf8.RuneCountInString(jdText) > longJDThreshold {
		score += pointsLongJD
	}
	return min(100, score)
}

// ComputeAdjustedScore moves base by +2 for every skill marked "know" and -2 for every
// other skill, clamped to [0,100]. With no skills the base is returned unchanged.
func ComputeAdjustedScore(base int, confidence map[string]string, allSkills []string) int {
	if len(allSkills) == 0 {
		return base
	}
	score := float64(base)
	for _, s := range allSkills {
		if confidence[s] == types.ConfidenceKnow {
			score += confidenceStep
		} else {
			score -= confidenceStep
		}
	}
	return int(max(0, min(100, math.Round(score))))
}

// WeakSkills returns up to three skills still marked for practice, in display order.
func WeakSkills(entry types.AnalysisEntry) []string {
	out := []string{}
	for _, s := range entry.ExtractedSkills.All() {
		level, ok := entry.SkillConfidenceMap[s]
		if !ok || level == types.ConfidencePractice {
			out = append(out, s)
			if len(out) == weakSkillLimit {
				break
			}
		}
	}
	return out
}
