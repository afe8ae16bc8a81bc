// Package tracker records the application pipeline stage of each job, the recent status
// change feed and the saved-job list.
package tracker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
)

const (
	// MaxStatusUpdates bounds the persisted update feed.
	MaxStatusUpdates = 50
	// VisibleStatusUpdates is how many updates Updates returns.
	VisibleStatusUpdates = 20
)

// LegacyStatusMap remaps statuses written before the six-stage pipeline existed.
var LegacyStatusMap = map[string]types.PipelineStage{
	"Not Applied": types.StageSaved,
	"Applied":     types.StageApplied,
	"Rejected":    types.StageRejected,
	"Selected":    types.StageOffer,
}

// ErrInvalidStatus is returned when a status is not a pipeline stage.
var ErrInvalidStatus = errors.New("invalid pipeline status")

// ResolveStage maps a stored status value onto a pipeline stage. Legacy values are
// remapped and anything unrecognized reads as Saved.
func ResolveStage(v any) types.PipelineStage {
	s, _ := v.(string)
	if stage := types.PipelineStage(s); stage.IsValid() {
		return stage
	}
	if stage, ok := LegacyStatusMap[s]; ok {
		return stage
	}
	return types.StageSaved
}

// Tracker reads and writes pipeline state through a store.
type Tracker struct {
	store storage.Store
	// Now stamps status update events. Defaults to time.Now.
	Now func() time.Time
}

// New returns a tracker over s.
func New(s storage.Store) *Tracker {
	return &Tracker{store: s, Now: time.Now}
}

func (t *Tracker) statuses() map[string]any {
	m := storage.ReadJSON[map[string]any](t.store, storage.KeyJobStatus, nil)
	if m == nil {
		m = map[string]any{}
	}
	return m
}

// rawUpdates returns the stored feed element by element. Elements are kept as stored so
// that one unreadable event never costs the rest of the feed.
func (t *Tracker) rawUpdates() []json.RawMessage {
	return storage.ReadJSON[[]json.RawMessage](t.store, storage.KeyStatusUpdates, nil)
}

// decodeUpdates returns the elements that decode as events, in feed order.
func decodeUpdates(raw []json.RawMessage) []types.StatusUpdateEvent {
	updates := make([]types.StatusUpdateEvent, 0, len(raw))
	for _, r := range raw {
		if bytes.Equal(bytes.TrimSpace(r), []byte("null")) {
			continue
		}
		var e types.StatusUpdateEvent
		if err := json.Unmarshal(r, &e); err != nil {
			continue
		}
		updates = append(updates, e)
	}
	return updates
}

// Status returns the stage of jobID. Jobs with no recorded status are Saved.
func (t *Tracker) Status(jobID string) types.PipelineStage {
	return ResolveStage(t.statuses()[jobID])
}

// SetStatus records status for jobID. Moving to any stage other than Saved with a known
// job also prepends an event to the update feed, which keeps the newest 50.
func (t *Tracker) SetStatus(jobID string, status types.PipelineStage, job *types.JobListing) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	store := t.statuses()
	store[jobID] = string(status)
	storage.WriteJSON(t.store, storage.KeyJobStatus, store)

	if status == types.StageSaved || job == nil {
		return nil
	}

	event := types.StatusUpdateEvent{
		JobID:       jobID,
		Title:       job.Title,
		Company:     job.Company,
		Status:      status,
		DateChanged: types.ISOTimestamp(t.now()),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode status update: %w", err)
	}
	updates := append([]json.RawMessage{data}, t.rawUpdates()...)
	if len(updates) > MaxStatusUpdates {
		updates = updates[:MaxStatusUpdates]
	}
	storage.WriteJSON(t.store, storage.KeyStatusUpdates, updates)
	return nil
}

// Updates returns the most recent readable status changes, newest first.
func (t *Tracker) Updates() []types.StatusUpdateEvent {
	updates := decodeUpdates(t.rawUpdates())
	if len(updates) > VisibleStatusUpdates {
		updates = updates[:VisibleStatusUpdates]
	}
	return updates
}

// Counts tallies every recorded status by stage.
func (t *Tracker) Counts() PipelineCounts {
	counts := PipelineCounts{}
	for _, stage := range types.PipelineStages {
		counts[stage] = 0
	}
	for _, v := range t.statuses() {
		counts[ResolveStage(v)]++
	}
	return counts
}

// SavedIDs returns the saved job ids in insertion order.
func (t *Tracker) SavedIDs() []string {
	ids := storage.ReadJSON[[]string](t.store, storage.KeySavedJobs, nil)
	if ids == nil {
		ids = []string{}
	}
	return ids
}

// Save adds id to the saved list if absent.
func (t *Tracker) Save(id string) {
	ids := t.SavedIDs()
	if slices.Contains(ids, id) {
		return
	}
	storage.WriteJSON(t.store, storage.KeySavedJobs, append(ids, id))
}

// Unsave removes id from the saved list.
func (t *Tracker) Unsave(id string) {
	ids := slices.DeleteFunc(t.SavedIDs(), func(x string) bool { return x == id })
	storage.WriteJSON(t.store, storage.KeySavedJobs, ids)
}

// IsSaved reports whether id is on the saved list.
func (t *Tracker) IsSaved(id string) bool {
	return slices.Contains(t.SavedIDs(), id)
}

func (t *Tracker) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}
