package tracker

import (
	"math"

	"github.com/jonathan/placement-suite/internal/types"
)

// PipelineCounts is the number of jobs in each stage.
type PipelineCounts map[types.PipelineStage]int

// Total is the number of tracked jobs.
func (c PipelineCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Stage weights for the application progress score. Saved carries no weight.
var stageWeights = map[types.PipelineStage]int{
	types.StageApplied:            20,
	types.StageInterviewScheduled: 40,
	types.StageInterviewCompleted: 60,
	types.StageOffer:              100,
	types.StageRejected:           10,
}

// progressNorm is the per-job weight that maps to a full score.
const progressNorm = 50

// ApplicationProgressScore rates pipeline momentum from 0 to 100. Later stages weigh
// more; an empty pipeline scores 0.
func ApplicationProgressScore(counts PipelineCounts) int {
	total := counts.Total()
	if total == 0 {
		return 0
	}
	weighted := 0
	for stage, w := range stageWeights {
		weighted += counts[stage] * w
	}
	score := math.Round(float64(weighted) / float64(total*progressNorm) * 100)
	return int(math.Min(100, score))
}
