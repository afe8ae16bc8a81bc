package jobs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/placement-suite/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a job catalog from a JSON or YAML file (chosen by extension).
// The file holds either a bare list of listings or an object with a "jobs" list.
// Listings that fail validation or repeat an earlier id are skipped and reported as
// ListingErrors alongside the surviving listings.
func LoadCatalog(path string) ([]types.JobListing, []error, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &CatalogError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseCatalog(content, filepath.Ext(path))
}

// ParseCatalog decodes catalog content. ext selects YAML for ".yaml"/".yml" and JSON
// otherwise.
func ParseCatalog(content []byte, ext string) ([]types.JobListing, []error, error) {
	listings, err := decodeCatalog(content, strings.ToLower(ext))
	if err != nil {
		return nil, nil, err
	}

	valid := make([]types.JobListing, 0, len(listings))
	var rejected []error
	seen := make(map[string]bool, len(listings))
	for i := range listings {
		l := listings[i]
		if err := l.Validate(); err != nil {
			rejected = append(rejected, &ListingError{Index: i, ID: l.ID, Cause: err})
			continue
		}
		if seen[l.ID] {
			rejected = append(rejected, &ListingError{Index: i, ID: l.ID, Cause: errors.New("duplicate id")})
			continue
		}
		seen[l.ID] = true
		if l.Skills == nil {
			l.Skills = []string{}
		}
		valid = append(valid, l)
	}
	return valid, rejected, nil
}

type catalogFile struct {
	Jobs []types.JobListing `json:"jobs" yaml:"jobs"`
}

func decodeCatalog(content []byte, ext string) ([]types.JobListing, error) {
	yamlInput := ext == ".yaml" || ext == ".yml"
	trimmed := strings.TrimSpace(string(content))

	var listings []types.JobListing
	if yamlInput {
		if strings.HasPrefix(trimmed, "-") {
			if err := yaml.Unmarshal(content, &listings); err != nil {
				return nil, &CatalogError{Message: "failed to unmarshal YAML", Cause: err}
			}
			return listings, nil
		}
		var wrapped catalogFile
		if err := yaml.Unmarshal(content, &wrapped); err != nil {
			return nil, &CatalogError{Message: "failed to unmarshal YAML", Cause: err}
		}
		return wrapped.Jobs, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(content, &listings); err != nil {
			return nil, &CatalogError{Message: "failed to unmarshal JSON", Cause: err}
		}
		return listings, nil
	}
	var wrapped catalogFile
	if err := json.Unmarshal(content, &wrapped); err != nil {
		return nil, &CatalogError{Message: "failed to unmarshal JSON", Cause: err}
	}
	return wrapped.Jobs, nil
}

// FindListing returns the listing with id, or nil.
func FindListing(catalog []types.JobListing, id string) *types.JobListing {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}
