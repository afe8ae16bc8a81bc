package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog_Valid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, validateCatalog(&buf, filepath.Join("testdata", "catalog.json")))
	assert.Contains(t, buf.String(), "Schema: valid")
	assert.Contains(t, buf.String(), "Listings: 4 loaded, 0 skipped")
}

func TestValidateCatalog_Problems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	content := `jobs:
  - id: a
    title: SDE
    company: Acme
    mode: Remote
    postedDaysAgo: 1
  - id: a
    title: Duplicate
    company: Acme
    postedDaysAgo: 2
  - id: b
    title: Analyst
    company: Beta
    mode: Anywhere
    postedDaysAgo: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var buf bytes.Buffer
	err := validateCatalog(&buf, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has problems")

	out := buf.String()
	assert.Contains(t, out, "Schema:")
	assert.Contains(t, out, "Listings: 1 loaded, 2 skipped")
	assert.Contains(t, out, "duplicate id")
}

func TestValidateCatalog_Unreadable(t *testing.T) {
	err := validateCatalog(&bytes.Buffer{}, filepath.Join("testdata", "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCatalogCommand(t *testing.T) {
	output, err := runBinary(t, t.TempDir(), "catalog", "validate", filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err, output)
	assert.Contains(t, output, "4 loaded")

	output, err = runBinary(t, t.TempDir(), "catalog", "validate")
	assert.Error(t, err)
	assert.Contains(t, output, "no catalog given")
}
