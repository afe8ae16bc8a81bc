package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPreferencesFile_YAML(t *testing.T) {
	raw, err := readPreferencesFile(filepath.Join("testdata", "preferences.yaml"))
	require.NoError(t, err)

	s := storage.NewMemoryStore()
	require.True(t, jobs.SavePreferences(s, raw))
	prefs := jobs.LoadPreferences(s)
	require.NotNil(t, prefs)
	assert.Equal(t, []string{"backend"}, prefs.RoleKeywords)
	assert.Equal(t, []string{"Bangalore"}, prefs.PreferredLocations)
	assert.Equal(t, "0-1", prefs.ExperienceLevel)
	assert.Equal(t, []string{"go"}, prefs.Skills)
	assert.Equal(t, 40, prefs.MinMatchScore)
}

func TestReadPreferencesFile_Invalid(t *testing.T) {
	_, err := readPreferencesFile(filepath.Join("testdata", "bad_preferences.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preferences file")

	_, err = readPreferencesFile(filepath.Join("testdata", "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPrintPreferences_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPreferences(&buf, storage.NewMemoryStore()))
	assert.Contains(t, buf.String(), "No preferences saved yet.")
}

func TestPrefsCommand_Clear(t *testing.T) {
	dir := t.TempDir()
	output, err := runBinary(t, dir, "prefs", "set", "--roles", "backend")
	require.NoError(t, err, output)

	output, err = runBinary(t, dir, "prefs", "clear")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Preferences cleared.")

	output, err = runBinary(t, dir, "prefs", "show")
	require.NoError(t, err, output)
	assert.Contains(t, output, "No preferences saved yet.")
}

func TestPrefsCommand_SetAndShow(t *testing.T) {
	dir := t.TempDir()

	output, err := runBinary(t, dir, "prefs", "set", "--roles", "Backend, SDE, backend", "--modes", "Remote", "--min-score", "55")
	require.NoError(t, err, output)
	assert.Contains(t, output, `"backend"`)
	assert.Contains(t, output, `"sde"`)
	assert.Contains(t, output, `"minMatchScore": 55`)

	// Flags that are not passed keep their stored values.
	output, err = runBinary(t, dir, "prefs", "set", "--skills", "Go")
	require.NoError(t, err, output)
	assert.Contains(t, output, `"minMatchScore": 55`)
	assert.Contains(t, output, `"go"`)

	output, err = runBinary(t, dir, "prefs", "show")
	require.NoError(t, err, output)
	assert.Contains(t, output, `"Remote"`)
}

func TestPrefsCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"Score above range", []string{"prefs", "set", "--min-score", "140"}, "must be between 0 and 100"},
		{"Score below range", []string{"prefs", "set", "--min-score", "-1"}, "must be between 0 and 100"},
		{"Schema violation", []string{"prefs", "set", "--file", filepath.Join("testdata", "bad_preferences.json")}, "invalid preferences file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runBinary(t, t.TempDir(), tt.args...)
			assert.Error(t, err)
			assert.Contains(t, output, tt.errorString)
		})
	}
}
