package jobs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_YAML(t *testing.T) {
	listings, rejected, err := LoadCatalog(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	require.Len(t, listings, 3)
	assert.Equal(t, "jt-001", listings[0].ID)
	assert.Equal(t, []string{"Java", "SQL"}, listings[0].Skills)
	assert.Equal(t, 85, ComputeMatchScore(listings[0], backendProfile()))

	require.Len(t, rejected, 1)
	var le *ListingError
	require.True(t, errors.As(rejected[0], &le))
	assert.Equal(t, 3, le.Index)
	assert.Equal(t, "jt-004", le.ID)
}

func TestLoadCatalog_JSONDropsDuplicatesAndMissingIDs(t *testing.T) {
	listings, rejected, err := LoadCatalog(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)

	require.Len(t, listings, 1)
	assert.Equal(t, "SDE Intern", listings[0].Title)
	assert.NotNil(t, listings[0].Skills)
	assert.Len(t, rejected, 2)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, _, err := LoadCatalog(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
	var ce *CatalogError
	assert.True(t, errors.As(err, &ce))
}

func TestParseCatalog_WrappedJSON(t *testing.T) {
	listings, rejected, err := ParseCatalog([]byte(`{"jobs":[{"id":"x","title":"T","company":"C","postedDaysAgo":0}]}`), ".json")
	require.NoError(t, err)
	assert.Empty(t, rejected)
	require.Len(t, listings, 1)
	assert.Equal(t, "x", listings[0].ID)
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, _, err := ParseCatalog([]byte(`{"jobs": [`), ".json")
	assert.Error(t, err)

	_, _, err = ParseCatalog([]byte("jobs: [unclosed"), ".yml")
	assert.Error(t, err)
}

func TestFindListing(t *testing.T) {
	catalog := sampleCatalog()
	require.NotNil(t, FindListing(catalog, "c"))
	assert.Equal(t, "Zoho", FindListing(catalog, "c").Company)
	assert.Nil(t, FindListing(catalog, "zz"))
}
