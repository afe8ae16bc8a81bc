package placement

import (
	"math"
	"testing"

	"github.com/jonathan/placement-suite/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightJobMatchQuality + WeightJDSkillAlignment + WeightResumeATS +
		WeightApplicationProgress + WeightPracticeCompletion
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestCompute_Weighted(t *testing.T) {
	got := Compute(Inputs{
		JobMatchQuality:     80,
		JDSkillAlignment:    60,
		Resume:              &types.ResumeRecord{PersonalInfo: types.PersonalInfo{Name: "Asha", Email: "a@b.co"}},
		ApplicationProgress: 30,
		PracticeCompletion:  30,
	})
	assert.Equal(t, 50, got.Score)
	assert.Equal(t, Breakdown{
		JobMatchQuality:     80,
		JDSkillAlignment:    60,
		ResumeATS:           20,
		ApplicationProgress: 30,
		PracticeCompletion:  30,
	}, got.Breakdown)
}

func TestCompute_NoResume(t *testing.T) {
	got := Compute(Inputs{JobMatchQuality: 100, JDSkillAlignment: 100, ApplicationProgress: 100, PracticeCompletion: 100})
	assert.Equal(t, 75, got.Score)
	assert.Zero(t, got.Breakdown.ResumeATS)
}

func TestCompute_ClampsInputs(t *testing.T) {
	got := Compute(Inputs{
		JobMatchQuality:     250,
		JDSkillAlignment:    -40,
		ApplicationProgress: math.NaN(),
		PracticeCompletion:  math.Inf(1),
	})
	assert.Equal(t, Breakdown{JobMatchQuality: 100, PracticeCompletion: 100}, got.Breakdown)
	assert.Equal(t, 40, got.Score)
}

func TestCompute_ZeroValue(t *testing.T) {
	assert.Equal(t, Score{}, Compute(Inputs{}))
}

func TestPracticeCompletion(t *testing.T) {
	assert.Equal(t, 30.0, PracticeCompletion(3, 10))
	assert.Equal(t, 33.0, PracticeCompletion(1, 3))
	assert.Zero(t, PracticeCompletion(0, 10))
	assert.Zero(t, PracticeCompletion(3, 0))
}
