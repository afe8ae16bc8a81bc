package types

// PipelineStage is a step of the application pipeline.
type PipelineStage string

// Pipeline stages in display order.
const (
	StageSaved              PipelineStage = "Saved"
	StageApplied            PipelineStage = "Applied"
	StageInterviewScheduled PipelineStage = "Interview Scheduled"
	StageInterviewCompleted PipelineStage = "Interview Completed"
	StageOffer              PipelineStage = "Offer"
	StageRejected           PipelineStage = "Rejected"
)

// PipelineStages lists every stage in pipeline order.
var PipelineStages = []PipelineStage{
	StageSaved,
	StageApplied,
	StageInterviewScheduled,
	StageInterviewCompleted,
	StageOffer,
	StageRejected,
}

// IsValid reports whether s is one of the current pipeline stages.
func (s PipelineStage) IsValid() bool {
	for _, stage := range PipelineStages {
		if s == stage {
			return true
		}
	}
	return false
}

// StatusUpdateEvent records a single status change for the recent-updates feed.
type StatusUpdateEvent struct {
	JobID       string        `json:"jobId"`
	Title       string        `json:"title"`
	Company     string        `json:"company"`
	Status      PipelineStage `json:"status"`
	DateChanged string        `json:"dateChanged"`
}
