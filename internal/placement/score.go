// Package placement computes the composite Placement Score from the suite's sub-scores.
package placement

import (
	"math"

	"github.com/jonathan/placement-suite/internal/ats"
	"github.com/jonathan/placement-suite/internal/types"
)

// Sub-score weights. They sum to exactly 1.
const (
	WeightJobMatchQuality     = 0.30
	WeightJDSkillAlignment    = 0.25
	WeightResumeATS           = 0.25
	WeightApplicationProgress = 0.10
	WeightPracticeCompletion  = 0.10
)

// Inputs are the sub-scores feeding the Placement Score, each nominally 0-100.
// A nil Resume contributes an ATS score of 0.
type Inputs struct {
	JobMatchQuality     float64
	JDSkillAlignment    float64
	Resume              *types.ResumeRecord
	ApplicationProgress float64
	PracticeCompletion  float64
}

// Breakdown holds each clamped, rounded sub-score.
type Breakdown struct {
	JobMatchQuality     int `json:"jobMatchQuality"`
	JDSkillAlignment    int `json:"jdSkillAlignment"`
	ResumeATS           int `json:"resumeAts"`
	ApplicationProgress int `json:"applicationProgress"`
	PracticeCompletion  int `json:"practiceCompletion"`
}

// Score is the Placement Score with its breakdown.
type Score struct {
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// Compute clamps every input to [0,100], treating NaN as 0, and returns the rounded
// weighted sum.
func Compute(in Inputs) Score {
	jobMatch := clamp(in.JobMatchQuality)
	alignment := clamp(in.JDSkillAlignment)
	resume := 0.0
	if in.Resume != nil {
		resume = clamp(float64(ats.Compute(in.Resume).Score))
	}
	progress := clamp(in.ApplicationProgress)
	practice := clamp(in.PracticeCompletion)

	total := WeightJobMatchQuality*jobMatch +
		WeightJDSkillAlignment*alignment +
		WeightResumeATS*resume +
		WeightApplicationProgress*progress +
		WeightPracticeCompletion*practice

	return Score{
		Score: round(clamp(total)),
		Breakdown: Breakdown{
			JobMatchQuality:     round(jobMatch),
			JDSkillAlignment:    round(alignment),
			ResumeATS:           round(resume),
			ApplicationProgress: round(progress),
			PracticeCompletion:  round(practice),
		},
	}
}

// PracticeCompletion converts completed/total practice items into a 0-100 percentage.
func PracticeCompletion(completed, total int) float64 {
	if completed <= 0 || total <= 0 {
		return 0
	}
	return math.Round(float64(completed) / float64(total) * 100)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(100, math.Max(0, v))
}

func round(v float64) int {
	return int(math.Round(v))
}
