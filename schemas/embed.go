// Package schemas embeds the JSON Schemas for the documents the suite reads and writes.
package schemas

import "embed"

// Schema file names.
const (
	Catalog       = "catalog.schema.json"
	Preferences   = "preferences.schema.json"
	Digest        = "digest.schema.json"
	AnalysisEntry = "analysis_entry.schema.json"
)

// All lists every embedded schema.
var All = []string{Catalog, Preferences, Digest, AnalysisEntry}

//go:embed *.schema.json
var files embed.FS

// Read returns the content of the named schema.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}
