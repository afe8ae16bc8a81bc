// Package ats scores resume completeness against a fixed rubric and gives per-bullet
// writing guidance.
package ats

import (
	"strings"

	"github.com/jonathan/placement-suite/internal/types"
)

// Rubric point values.
const (
	pointsName       = 10
	pointsEmail      = 10
	pointsPhone      = 5
	pointsSummary    = 10
	pointsActionVerb = 10
	pointsExperience = 15
	pointsEducation  = 10
	pointsSkills     = 10
	pointsProject    = 10
	pointsLinkedIn   = 5
	pointsGitHub     = 5

	minSummaryLength = 50
	minSkillCount    = 5
)

// Suggestions, one per rubric line, in rubric order.
const (
	SuggestName       = "Add your name (+10 points)"
	SuggestEmail      = "Add your email (+10 points)"
	SuggestPhone      = "Add your phone (+5 points)"
	SuggestSummary    = "Add a professional summary longer than 50 characters (+10 points)"
	SuggestActionVerb = "Use action verbs in your summary (e.g. built, led, designed) (+10 points)"
	SuggestExperience = "Add at least one experience entry with bullet points (+15 points)"
	SuggestEducation  = "Add at least one education entry (+10 points)"
	SuggestSkills     = "Add at least 5 skills (+10 points)"
	SuggestProject    = "Add at least one project (+10 points)"
	SuggestLinkedIn   = "Add your LinkedIn URL (+5 points)"
	SuggestGitHub     = "Add your GitHub URL (+5 points)"
)

// SummaryActionVerbs are matched as case-insensitive substrings of the summary.
var SummaryActionVerbs = []string{
	"built", "led", "designed", "improved", "created", "implemented", "developed",
	"delivered", "managed", "achieved", "established", "optimized", "automated",
	"launched", "reduced", "increased", "coordinated", "mentored", "streamlined",
}

// Result is the rubric outcome.
type Result struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// Band is the display bucket of a score.
type Band struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Compute scores resume against the rubric. Each line is independent and every unmet
// line contributes its suggestion. A nil resume scores 0.
func Compute(resume *types.ResumeRecord) Result {
	if resume == nil {
		resume = &types.ResumeRecord{}
	}

	res := Result{Suggestions: []string{}}
	check := func(ok bool, points int, suggestion string) {
		if ok {
			res.Score += points
			return
		}
		res.Suggestions = append(res.Suggestions, suggestion)
	}

	summary := strings.TrimSpace(resume.Summary)

	check(present(resume.PersonalInfo.Name), pointsName, SuggestName)
	check(present(resume.PersonalInfo.Email), pointsEmail, SuggestEmail)
	check(present(resume.PersonalInfo.Phone), pointsPhone, SuggestPhone)
	check(len([]rune(summary)) > minSummaryLength, pointsSummary, SuggestSummary)
	check(hasActionVerb(summary), pointsActionVerb, SuggestActionVerb)
	check(hasExperienceDetails(resume.Experience), pointsExperience, SuggestExperience)
	check(len(resume.Education) > 0, pointsEducation, SuggestEducation)
	check(resume.Skills.Count() >= minSkillCount, pointsSkills, SuggestSkills)
	check(len(resume.Projects) > 0, pointsProject, SuggestProject)
	check(present(resume.Links.LinkedIn), pointsLinkedIn, SuggestLinkedIn)
	check(present(resume.Links.GitHub), pointsGitHub, SuggestGitHub)

	res.Score = max(0, min(100, res.Score))
	return res
}

// BandFor maps a score onto its display band. Boundaries are inclusive: up to 40 is
// Needs Work and up to 70 is Getting There.
func BandFor(score int) Band {
	switch {
	case score <= 40:
		return Band{Label: "Needs Work", Color: "red"}
	case score <= 70:
		return Band{Label: "Getting There", Color: "amber"}
	default:
		return Band{Label: "Strong Resume", Color: "green"}
	}
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

func hasActionVerb(summary string) bool {
	lower := strings.ToLower(summary)
	for _, verb := range SummaryActionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

func hasExperienceDetails(entries []types.Experience) bool {
	for _, e := range entries {
		if present(e.Details) {
			return true
		}
	}
	return false
}
