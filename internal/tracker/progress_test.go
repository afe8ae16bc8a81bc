package tracker

import (
	"testing"

	"github.com/jonathan/placement-suite/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestApplicationProgressScore(t *testing.T) {
	tests := []struct {
		name   string
		counts PipelineCounts
		want   int
	}{
		{"empty", PipelineCounts{}, 0},
		{"only saved", PipelineCounts{types.StageSaved: 4}, 0},
		{"mixed", PipelineCounts{types.StageSaved: 2, types.StageApplied: 1, types.StageInterviewScheduled: 1}, 30},
		{"rounds", PipelineCounts{types.StageSaved: 2, types.StageApplied: 1}, 13},
		{"rejections", PipelineCounts{types.StageRejected: 3}, 20},
		{"interview completed", PipelineCounts{types.StageSaved: 1, types.StageInterviewCompleted: 1}, 60},
		{"capped", PipelineCounts{types.StageApplied: 1, types.StageOffer: 1}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplicationProgressScore(tt.counts))
		})
	}
}
