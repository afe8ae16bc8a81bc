package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the placement binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "placement"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/placement ./cmd/placement'", binaryPath)
	}

	return binaryPath
}

// runBinary runs the placement binary against a throwaway SQLite store shared by
// every call with the same dir.
func runBinary(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	full := append([]string{"--store", "sqlite", "--store-path", filepath.Join(dir, "state.db")}, args...)
	cmd := exec.Command(getBinaryPath(t), full...)
	cmd.Env = append(os.Environ(), "LOG_LEVEL=error")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func testCatalog(t *testing.T) []types.JobListing {
	t.Helper()
	catalog, rejected, err := jobs.LoadCatalog(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)
	require.Empty(t, rejected)
	return catalog
}

// storeWithPreferences returns a memory store holding the backend-engineer profile.
func storeWithPreferences(t *testing.T) *storage.MemoryStore {
	t.Helper()
	s := storage.NewMemoryStore()
	require.True(t, jobs.SavePreferences(s, map[string]any{
		"roleKeywords":       "backend",
		"preferredLocations": []any{"Bangalore"},
		"preferredMode":      []any{"Remote"},
		"experienceLevel":    "0-1",
		"skills":             "go",
		"minMatchScore":      float64(40),
	}))
	return s
}
