package main

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreJobs_WithPreferences(t *testing.T) {
	s := storeWithPreferences(t)
	var buf bytes.Buffer

	err := scoreJobs(&buf, s, testCatalog(t), jobs.FilterState{Sort: jobs.SortMatch}, 10, true)
	require.NoError(t, err)

	var list []jobs.ScoredJob
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	require.Len(t, list, 4)

	got := map[string]int{}
	order := make([]string, len(list))
	for i, j := range list {
		require.NotNil(t, j.MatchScore)
		got[j.ID] = *j.MatchScore
		order[i] = j.ID
	}
	assert.Equal(t, map[string]int{"jt-1": 100, "jt-2": 0, "jt-3": 15, "jt-4": 20}, got)
	assert.Equal(t, []string{"jt-1", "jt-4", "jt-3", "jt-2"}, order)
}

func TestScoreJobs_OnlyMatchesAndStatusFilter(t *testing.T) {
	s := storeWithPreferences(t)
	catalog := testCatalog(t)
	var buf bytes.Buffer

	require.NoError(t, scoreJobs(&buf, s, catalog, jobs.FilterState{ShowOnlyMatches: true}, 0, false))
	out := buf.String()
	assert.Contains(t, out, "MATCHED JOBS (1)")
	assert.Contains(t, out, "Backend Engineer · Razorpay")
	assert.NotContains(t, out, "QA Engineer")

	require.NoError(t, setStatus(&bytes.Buffer{}, s, catalog, "jt-3", types.StageApplied))
	buf.Reset()
	require.NoError(t, scoreJobs(&buf, s, catalog, jobs.FilterState{Status: string(types.StageApplied)}, 0, false))
	assert.Contains(t, buf.String(), "Frontend Developer · Swiggy")
	assert.Contains(t, buf.String(), "Status: Applied")
}

func TestScoreJobs_NoPreferences(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scoreJobs(&buf, storage.NewMemoryStore(), testCatalog(t), jobs.FilterState{}, 10, false))

	out := buf.String()
	assert.Contains(t, out, "Set your preferences to activate intelligent matching.")
	assert.Contains(t, out, "Match: —")
}

func TestPrintSaved(t *testing.T) {
	s := storeWithPreferences(t)
	catalog := testCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, printSaved(&buf, s, catalog))
	assert.Contains(t, buf.String(), "No saved jobs.")

	tr := newTracker(s)
	tr.Save("jt-4")
	tr.Save("jt-1")
	tr.Save("gone")

	buf.Reset()
	require.NoError(t, printSaved(&buf, s, catalog))
	out := buf.String()
	assert.Contains(t, out, "MATCHED JOBS (2)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Razorpay")), bytes.Index(buf.Bytes(), []byte("Zomato")), "catalog order")
}

func TestSetSaved(t *testing.T) {
	s := storage.NewMemoryStore()
	var buf bytes.Buffer

	setSaved(&buf, s, "jt-1", true)
	setSaved(&buf, s, "jt-1", true)
	setSaved(&buf, s, "jt-2", true)
	setSaved(&buf, s, "jt-1", false)
	setSaved(&buf, s, "jt-1", false)

	assert.Equal(t, "Saved jt-1 (1 saved)\n"+
		"jt-1 is already saved (1 saved)\n"+
		"Saved jt-2 (2 saved)\n"+
		"Removed jt-1 (1 saved)\n"+
		"jt-1 was not saved (1 saved)\n", buf.String())
	assert.Equal(t, []string{"jt-2"}, newTracker(s).SavedIDs())
}

func TestJobsCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Unknown sort",
			args:        []string{"--catalog", filepath.Join("testdata", "catalog.json"), "jobs", "score", "--sort", "random"},
			errorString: "unknown sort",
		},
		{
			name:        "Missing catalog",
			args:        []string{"jobs", "score"},
			errorString: "no job catalog configured",
		},
		{
			name:        "Save without id",
			args:        []string{"jobs", "save"},
			errorString: "accepts 1 arg",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, append([]string{"--store", "memory"}, tt.args...)...)
			cmd.Env = []string{"HOME=" + t.TempDir()}
			output, err := cmd.CombinedOutput()
			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestJobsCommand_SaveAndList(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join("testdata", "catalog.json")

	output, err := runBinary(t, dir, "jobs", "save", "jt-2")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Saved jt-2 (1 saved)")

	output, err = runBinary(t, dir, "--catalog", catalog, "jobs", "saved")
	require.NoError(t, err, output)
	assert.Contains(t, output, "QA Engineer · Freshworks")

	output, err = runBinary(t, dir, "jobs", "unsave", "jt-2")
	require.NoError(t, err, output)
	assert.Contains(t, output, "(0 saved)")
}
