// Package jobs scores job listings against a preference profile and builds the
// filtered job list and the frozen daily digest.
package jobs

import (
	"slices"
	"strings"

	"github.com/jonathan/placement-suite/internal/types"
)

// Match score weights. They are additive and never renormalized.
const (
	weightTitleKeyword       = 25
	weightDescriptionKeyword = 15
	weightLocation           = 15
	weightMode               = 10
	weightExperience         = 10
	weightSkill              = 15
	weightRecent             = 5
	weightLinkedIn           = 5

	recentDays = 2
)

// ScoreFunc scores one listing against a profile.
type ScoreFunc func(job types.JobListing, prefs *types.PreferenceProfile) int

// ScoredJob is a listing with the transient match score of one scoring pass.
// MatchScore is nil when no preference profile exists.
type ScoredJob struct {
	types.JobListing
	MatchScore *int `json:"matchScore"`
}

// ComputeMatchScore returns the 0-100 match score of job for prefs. A nil profile
// scores 0. Listings from LinkedIn always receive a small fixed bonus.
func ComputeMatchScore(job types.JobListing, prefs *types.PreferenceProfile) int {
	if prefs == nil {
		return 0
	}

	score := 0
	title := strings.ToLower(job.Title)
	description := strings.ToLower(job.Description)

	if containsAnyKeyword(title, prefs.RoleKeywords) {
		score += weightTitleKeyword
	}
	if containsAnyKeyword(description, prefs.RoleKeywords) {
		score += weightDescriptionKeyword
	}

	if job.Location != "" && slices.Contains(prefs.PreferredLocations, job.Location) {
		score += weightLocation
	}
	if job.Mode != "" && slices.Contains(prefs.PreferredMode, string(job.Mode)) {
		score += weightMode
	}
	if prefs.ExperienceLevel != "" && string(job.Experience) == prefs.ExperienceLevel {
		score += weightExperience
	}

	if len(prefs.Skills) > 0 {
		for _, s := range job.Skills {
			if slices.Contains(prefs.Skills, strings.ToLower(s)) {
				score += weightSkill
				break
			}
		}
	}

	if job.PostedDaysAgo <= recentDays {
		score += weightRecent
	}
	if job.Source == types.SourceLinkedIn {
		score += weightLinkedIn
	}

	return clampScore(score)
}

// Score wraps every job with its match score, or a nil score when prefs is nil.
func Score(catalog []types.JobListing, prefs *types.PreferenceProfile) []ScoredJob {
	out := make([]ScoredJob, len(catalog))
	for i, job := range catalog {
		out[i] = ScoredJob{JobListing: job}
		if prefs != nil {
			s := ComputeMatchScore(job, prefs)
			out[i].MatchScore = &s
		}
	}
	return out
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	return max(0, min(100, score))
}
