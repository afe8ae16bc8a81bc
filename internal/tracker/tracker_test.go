package tracker

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) (*Tracker, *storage.MemoryStore) {
	t.Helper()
	s := storage.NewMemoryStore()
	tr := New(s)
	tr.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return tr, s
}

func job(id string) *types.JobListing {
	return &types.JobListing{ID: id, Title: "Backend Engineer", Company: "Acme"}
}

func TestResolveStage(t *testing.T) {
	tests := []struct {
		in   any
		want types.PipelineStage
	}{
		{"Interview Scheduled", types.StageInterviewScheduled},
		{"Not Applied", types.StageSaved},
		{"Applied", types.StageApplied},
		{"Selected", types.StageOffer},
		{"Rejected", types.StageRejected},
		{"Ghosted", types.StageSaved},
		{nil, types.StageSaved},
		{3.0, types.StageSaved},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStage(tt.in))
		})
	}
}

func TestStatus_DefaultsAndLegacy(t *testing.T) {
	tr, s := newTestTracker(t)
	assert.Equal(t, types.StageSaved, tr.Status("unknown"))

	require.NoError(t, s.Set(storage.KeyJobStatus, `{"a":"Selected","b":"Not Applied","c":"Offer"}`))
	assert.Equal(t, types.StageOffer, tr.Status("a"))
	assert.Equal(t, types.StageSaved, tr.Status("b"))
	assert.Equal(t, types.StageOffer, tr.Status("c"))

	require.NoError(t, s.Set(storage.KeyJobStatus, `["not","an","object"]`))
	assert.Equal(t, types.StageSaved, tr.Status("a"))
}

func TestSetStatus_RejectsInvalid(t *testing.T) {
	tr, s := newTestTracker(t)
	err := tr.SetStatus("a", "Hired", job("a"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, ok, _ := s.Get(storage.KeyJobStatus)
	assert.False(t, ok)
	assert.Empty(t, tr.Updates())
}

func TestSetStatus_RecordsEvent(t *testing.T) {
	tr, _ := newTestTracker(t)
	require.NoError(t, tr.SetStatus("a", types.StageApplied, job("a")))

	assert.Equal(t, types.StageApplied, tr.Status("a"))
	updates := tr.Updates()
	require.Len(t, updates, 1)
	assert.Equal(t, types.StatusUpdateEvent{
		JobID:       "a",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Status:      types.StageApplied,
		DateChanged: "2026-03-01T12:00:00.000Z",
	}, updates[0])
}

func TestSetStatus_SavedOrNoJobSkipsEvent(t *testing.T) {
	tr, _ := newTestTracker(t)
	require.NoError(t, tr.SetStatus("a", types.StageSaved, job("a")))
	require.NoError(t, tr.SetStatus("b", types.StageOffer, nil))

	assert.Equal(t, types.StageOffer, tr.Status("b"))
	assert.Empty(t, tr.Updates())
}

func TestSetStatus_UpdateFeedBounds(t *testing.T) {
	tr, s := newTestTracker(t)
	for i := 0; i < 60; i++ {
		id := fmt.Sprintf("job-%d", i)
		require.NoError(t, tr.SetStatus(id, types.StageApplied, job(id)))
	}

	stored := storage.ReadJSON[[]types.StatusUpdateEvent](s, storage.KeyStatusUpdates, nil)
	assert.Len(t, stored, MaxStatusUpdates)
	assert.Equal(t, "job-59", stored[0].JobID)
	assert.Equal(t, "job-10", stored[MaxStatusUpdates-1].JobID)

	visible := tr.Updates()
	assert.Len(t, visible, VisibleStatusUpdates)
	assert.Equal(t, "job-59", visible[0].JobID)
}

func TestSetStatus_KeepsFeedWithUnreadableEvent(t *testing.T) {
	tr, s := newTestTracker(t)
	require.NoError(t, s.Set(storage.KeyStatusUpdates,
		`[{"jobId":"a","title":"SDE","company":"Acme","status":"Applied","dateChanged":"2026-02-01T00:00:00.000Z"},`+
			`{"jobId":"b","title":"QA","company":"Beta","status":"Offer","dateChanged":7},null]`))

	visible := tr.Updates()
	require.Len(t, visible, 1)
	assert.Equal(t, "a", visible[0].JobID)

	require.NoError(t, tr.SetStatus("c", types.StageApplied, job("c")))

	var stored []map[string]any
	raw, ok, err := s.Get(storage.KeyStatusUpdates)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 4, "existing elements are kept as stored")
	assert.Equal(t, "c", stored[0]["jobId"])
	assert.Equal(t, "a", stored[1]["jobId"])
	assert.Equal(t, float64(7), stored[2]["dateChanged"])
	assert.Nil(t, stored[3])

	visible = tr.Updates()
	require.Len(t, visible, 2)
	assert.Equal(t, "c", visible[0].JobID)
	assert.Equal(t, "a", visible[1].JobID)
}

func TestUpdates_NonArrayFeedIsEmpty(t *testing.T) {
	tr, s := newTestTracker(t)
	require.NoError(t, s.Set(storage.KeyStatusUpdates, `{"jobId":"a"}`))
	assert.Empty(t, tr.Updates())
	assert.NotNil(t, tr.Updates())
}

func TestCounts(t *testing.T) {
	tr, s := newTestTracker(t)
	counts := tr.Counts()
	assert.Len(t, counts, len(types.PipelineStages))
	assert.Zero(t, counts.Total())

	require.NoError(t, s.Set(storage.KeyJobStatus, `{"a":"Applied","b":"Selected","c":"Not Applied","d":"weird","e":"Interview Completed"}`))
	counts = tr.Counts()
	assert.Equal(t, 2, counts[types.StageSaved])
	assert.Equal(t, 1, counts[types.StageApplied])
	assert.Equal(t, 1, counts[types.StageOffer])
	assert.Equal(t, 1, counts[types.StageInterviewCompleted])
	assert.Equal(t, 5, counts.Total())
}

func TestSavedIDs(t *testing.T) {
	tr, _ := newTestTracker(t)
	assert.Equal(t, []string{}, tr.SavedIDs())

	tr.Save("a")
	tr.Save("b")
	tr.Save("a")
	assert.Equal(t, []string{"a", "b"}, tr.SavedIDs())
	assert.True(t, tr.IsSaved("b"))

	tr.Unsave("a")
	assert.Equal(t, []string{"b"}, tr.SavedIDs())
	assert.False(t, tr.IsSaved("a"))

	tr.Unsave("missing")
	assert.Equal(t, []string{"b"}, tr.SavedIDs())
}

func TestStatusSatisfiesFilterHook(t *testing.T) {
	tr, _ := newTestTracker(t)
	require.NoError(t, tr.SetStatus("a", types.StageRejected, nil))

	var statusOf func(string) types.PipelineStage = tr.Status
	assert.Equal(t, types.StageRejected, statusOf("a"))
}
