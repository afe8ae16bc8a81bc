package jobs

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jonathan/placement-suite/internal/types"
)

// Sort orders accepted by FilterAndSort.
const (
	SortLatest = "latest"
	SortMatch  = "match"
	SortSalary = "salary"
)

// FilterState is the dashboard filter bar. Empty fields do not filter.
type FilterState struct {
	Keyword         string
	Location        string
	Mode            string
	Experience      string
	Source          string
	Status          string
	ShowOnlyMatches bool
	Sort            string
}

// StatusFunc resolves the pipeline stage of a job id.
type StatusFunc func(jobID string) types.PipelineStage

// FilterAndSort applies state to the catalog, scores the survivors against prefs, and
// sorts them. Sorting is stable so ties keep catalog order. statusOf may be nil, in
// which case every job is treated as Saved.
func FilterAndSort(catalog []types.JobListing, state FilterState, prefs *types.PreferenceProfile, statusOf StatusFunc) []ScoredJob {
	keyword := strings.ToLower(strings.TrimSpace(state.Keyword))

	filtered := make([]types.JobListing, 0, len(catalog))
	for _, j := range catalog {
		if keyword != "" && !strings.Contains(strings.ToLower(j.Title+" "+j.Company), keyword) {
			continue
		}
		if state.Location != "" && j.Location != state.Location {
			continue
		}
		if state.Mode != "" && string(j.Mode) != state.Mode {
			continue
		}
		if state.Experience != "" && string(j.Experience) != state.Experience {
			continue
		}
		if state.Source != "" && string(j.Source) != state.Source {
			continue
		}
		if state.Status != "" && string(resolveStatus(statusOf, j.ID)) != state.Status {
			continue
		}
		filtered = append(filtered, j)
	}

	list := Score(filtered, prefs)

	if state.ShowOnlyMatches && prefs != nil {
		list = slices.DeleteFunc(list, func(j ScoredJob) bool {
			return j.MatchScore == nil || *j.MatchScore < prefs.MinMatchScore
		})
	}

	switch {
	case state.Sort == SortMatch && prefs != nil:
		slices.SortStableFunc(list, func(a, b ScoredJob) int {
			return cmp.Compare(scoreOrMinus(b), scoreOrMinus(a))
		})
	case state.Sort == SortSalary:
		slices.SortStableFunc(list, func(a, b ScoredJob) int {
			return cmp.Compare(ParseSalaryNumber(b.SalaryRange), ParseSalaryNumber(a.SalaryRange))
		})
	default:
		slices.SortStableFunc(list, func(a, b ScoredJob) int {
			return cmp.Compare(a.PostedDaysAgo, b.PostedDaysAgo)
		})
	}
	return list
}

// JobMatchQuality is the rounded mean match score of the five best-matching jobs in
// the catalog, or 0 when there is no profile or no jobs.
func JobMatchQuality(catalog []types.JobListing, prefs *types.PreferenceProfile) int {
	if prefs == nil {
		return 0
	}
	sorted := FilterAndSort(catalog, FilterState{Sort: SortMatch}, prefs, nil)
	if len(sorted) == 0 {
		return 0
	}
	top := sorted[:min(5, len(sorted))]
	sum := 0
	for _, j := range top {
		sum += scoreOrMinus(j)
	}
	return roundDiv(sum, len(top))
}

func resolveStatus(statusOf StatusFunc, id string) types.PipelineStage {
	if statusOf == nil {
		return types.StageSaved
	}
	return statusOf(id)
}

func scoreOrMinus(j ScoredJob) int {
	if j.MatchScore == nil {
		return -1
	}
	return *j.MatchScore
}

// roundDiv rounds a/b half up for non-negative operands.
func roundDiv(a, b int) int {
	return (2*a + b) / (2 * b)
}
