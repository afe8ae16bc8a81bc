package main

import (
	"bytes"
	"testing"

	"github.com/jonathan/placement-suite/internal/checklist"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTests_Master(t *testing.T) {
	s := storage.NewMemoryStore()

	var buf bytes.Buffer
	require.NoError(t, toggleTests(&buf, s, listMaster, []string{"jd-required", "exports-correct"}, true))
	assert.Contains(t, buf.String(), "Tests Passed: 2 / 10")
	assert.Contains(t, buf.String(), "[x] jd-required")

	require.NoError(t, toggleTests(&buf, s, listMaster, []string{"jd-required"}, false))
	st := checklist.LoadMaster(s)
	assert.Equal(t, 1, st.Completed)

	err := toggleTests(&buf, s, listMaster, []string{"nope"}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown test "nope"`)
}

func TestToggleTests_Tracker(t *testing.T) {
	s := storage.NewMemoryStore()

	var buf bytes.Buffer
	require.NoError(t, toggleTests(&buf, s, listTracker, []string{"0", "9"}, true))
	assert.Contains(t, buf.String(), "JOB TRACKER TESTS")

	st := checklist.LoadJobTracker(s)
	assert.Equal(t, 2, st.Completed)
	assert.True(t, st.Tests[9].Checked)
	assert.False(t, checklist.LoadMaster(s).Tests[0].Checked, "lists are stored separately")
}

func TestLoadChecklist_Unknown(t *testing.T) {
	_, err := loadChecklist(storage.NewMemoryStore(), "release")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown checklist")
}

func TestChecklistCommand(t *testing.T) {
	dir := t.TempDir()

	output, err := runBinary(t, dir, "checklist", "check", "tracker", "3", "5")
	require.NoError(t, err, output)

	output, err = runBinary(t, dir, "checklist", "tracker")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Tests Passed: 2 / 10")

	output, err = runBinary(t, dir, "checklist", "reset", "tracker")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Tests Passed: 0 / 10")

	output, err = runBinary(t, dir, "checklist", "everything")
	assert.Error(t, err)
	assert.Contains(t, output, "invalid argument")
}
