package history

import (
	"time"

	"github.com/jonathan/placement-suite/internal/logger"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
)

// LoadResult is the outcome of reading the persisted history.
type LoadResult struct {
	Entries []types.AnalysisEntry
	// Skipped counts records that were dropped because they could not be loaded.
	Skipped int
}

// Load reads and normalizes every stored analysis, newest first. Invalid records are
// counted in Skipped and never abort the load; an unreadable list yields no entries.
func Load(s storage.Store) LoadResult {
	raw := storage.ReadJSON[[]any](s, storage.KeyAnalysisHistory, nil)

	res := LoadResult{Entries: make([]types.AnalysisEntry, 0, len(raw))}
	for _, item := range raw {
		if !IsValid(item) {
			res.Skipped++
			continue
		}
		res.Entries = append(res.Entries, NormalizeEntry(item.(map[string]any)))
	}

	if res.Skipped > 0 {
		log := logger.Component("history")
		log.Info().Int("skipped", res.Skipped).Int("loaded", len(res.Entries)).Msg("skipped unreadable history entries")
	}
	return res
}

// Save replaces the stored history with entries.
func Save(s storage.Store, entries []types.AnalysisEntry) bool {
	if entries == nil {
		entries = []types.AnalysisEntry{}
	}
	return storage.WriteJSON(s, storage.KeyAnalysisHistory, entries)
}

// Add prepends entry to the stored history and returns the new list.
func Add(s storage.Store, entry types.AnalysisEntry) ([]types.AnalysisEntry, error) {
	canonical, err := Canonicalize(entry)
	if err != nil {
		return nil, err
	}
	entries := append([]types.AnalysisEntry{canonical}, Load(s).Entries...)
	Save(s, entries)
	return entries, nil
}

// Update replaces the stored entry with the same id, stamping updatedAt with now.
// When no entry matches, the history is returned unchanged and nothing is written.
func Update(s storage.Store, entry types.AnalysisEntry, now time.Time) ([]types.AnalysisEntry, error) {
	entries := Load(s).Entries
	idx := indexOf(entries, entry.ID)
	if idx < 0 {
		return entries, nil
	}

	entry.UpdatedAt = types.ISOTimestamp(now)
	canonical, err := Canonicalize(entry)
	if err != nil {
		return nil, err
	}
	entries[idx] = canonical
	Save(s, entries)
	return entries, nil
}

// Find returns the entry with id, or nil.
func Find(entries []types.AnalysisEntry, id string) *types.AnalysisEntry {
	if idx := indexOf(entries, id); idx >= 0 {
		return &entries[idx]
	}
	return nil
}

// Latest returns the most recent entry, or nil for an empty history.
func Latest(entries []types.AnalysisEntry) *types.AnalysisEntry {
	if len(entries) == 0 {
		return nil
	}
	return &entries[0]
}

func indexOf(entries []types.AnalysisEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}
