// Package checklist tracks the manual QA checklists for the readiness tools and the job
// tracker.
package checklist

import (
	"strconv"

	"github.com/jonathan/placement-suite/internal/storage"
)

// Test is one manual verification step.
type Test struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Hint    string `json:"hint"`
	Checked bool   `json:"checked"`
}

// Status is a checklist with its number of checked tests.
type Status struct {
	Tests     []Test
	Completed int
}

// Done reports whether every test is checked. Shipping is gated on it.
func (s Status) Done() bool {
	return len(s.Tests) > 0 && s.Completed == len(s.Tests)
}

// MasterTests is the readiness tool checklist.
var MasterTests = []Test{
	{ID: "jd-required", Label: "JD required validation works", Hint: "On Assessments, JD must be required and Analyze should be disabled when empty."},
	{ID: "short-jd-warning", Label: "Short JD warning shows for <200 chars", Hint: "Use a very small JD and confirm the calm warning appears."},
	{ID: "skills-grouping", Label: "Skills extraction groups correctly", Hint: "Include DSA, React, SQL, etc. in a JD and check they land in the right buckets."},
	{ID: "round-mapping", Label: "Round mapping changes based on company + skills", Hint: "Compare a startup React JD vs an enterprise DSA-heavy JD."},
	{ID: "score-deterministic", Label: "Score calculation is deterministic", Hint: "Re-run the same JD twice and confirm base score is identical."},
	{ID: "toggles-live-score", Label: "Skill toggles update score live", Hint: `Flip several skills between "Need practice" and "I know this" and watch the score.`},
	{ID: "persistence-refresh", Label: "Changes persist after refresh", Hint: "Refresh Results and confirm skills + score stay aligned."},
	{ID: "history-saves-loads", Label: "History saves and loads correctly", Hint: "Run multiple analyses and open them from History without errors."},
	{ID: "exports-correct", Label: "Export buttons copy the correct content", Hint: "Use Copy/Download and verify content in a text editor."},
	{ID: "no-console-errors", Label: "No console errors on core pages", Hint: "Inspect browser console while using Landing, Dashboard, Assessments, Results, History."},
}

// JobTrackerTests is the job tracker checklist. Its ids are the list positions.
var JobTrackerTests = []Test{
	{ID: "0", Label: "Preferences persist after refresh", Hint: "Save preferences, refresh page, confirm form is prefilled."},
	{ID: "1", Label: "Match score calculates correctly", Hint: "Set preferences, open Dashboard, confirm job cards show match %."},
	{ID: "2", Label: `"Show only matches" toggle works`, Hint: "Enable toggle on Dashboard, confirm only jobs above threshold show."},
	{ID: "3", Label: "Save job persists after refresh", Hint: "Save a job, refresh, open Saved; job still listed."},
	{ID: "4", Label: "Apply opens in new tab", Hint: "Click Apply on a card; link opens in new tab."},
	{ID: "5", Label: "Status update persists after refresh", Hint: "Change status to Applied, refresh; status still Applied."},
	{ID: "6", Label: "Status filter works correctly", Hint: "Set Status filter to Applied; only Applied jobs show."},
	{ID: "7", Label: "Digest generates top 10 by score", Hint: "Generate digest; confirm 10 jobs, ordered by match."},
	{ID: "8", Label: "Digest persists for the day", Hint: "Generate digest, refresh page; digest still visible."},
	{ID: "9", Label: "No console errors on main pages", Hint: "Open /, /app/jobs, /app/jobs/saved, /app/jobs/digest, /app/jobs/settings; check console."},
}

// LoadMaster returns the readiness checklist merged with the saved checks. Saved ids
// that are not in MasterTests are ignored.
func LoadMaster(s storage.Store) Status {
	saved := storage.ReadJSON[[]any](s, storage.KeyTestChecklist, nil)
	byID := make(map[string]bool, len(saved))
	for _, item := range saved {
		c, _ := item.(map[string]any)
		if id, ok := c["id"].(string); ok {
			byID[id] = truthy(c["checked"])
		}
	}
	return merge(MasterTests, func(i int, t Test) bool { return byID[t.ID] })
}

// SaveMaster stores the checked state of tests as id/checked pairs.
func SaveMaster(s storage.Store, tests []Test) bool {
	type check struct {
		ID      string `json:"id"`
		Checked bool   `json:"checked"`
	}
	out := make([]check, 0, len(tests))
	for _, t := range tests {
		out = append(out, check{ID: t.ID, Checked: t.Checked})
	}
	return storage.WriteJSON(s, storage.KeyTestChecklist, out)
}

// LoadJobTracker returns the job tracker checklist merged with the saved checks.
func LoadJobTracker(s storage.Store) Status {
	saved := storage.ReadJSON[map[string]any](s, storage.KeyJobTrackerTests, nil)
	return merge(JobTrackerTests, func(i int, _ Test) bool { return truthy(saved[strconv.Itoa(i)]) })
}

// SaveJobTracker stores the checked state of tests keyed by list position.
func SaveJobTracker(s storage.Store, tests []Test) bool {
	out := make(map[string]bool, len(tests))
	for i, t := range tests {
		out[strconv.Itoa(i)] = t.Checked
	}
	return storage.WriteJSON(s, storage.KeyJobTrackerTests, out)
}

// Toggle sets the checked state of the test with id and reports whether it was found.
func Toggle(tests []Test, id string, checked bool) bool {
	for i := range tests {
		if tests[i].ID == id {
			tests[i].Checked = checked
			return true
		}
	}
	return false
}

func merge(master []Test, checked func(int, Test) bool) Status {
	st := Status{Tests: make([]Test, len(master))}
	for i, t := range master {
		t.Checked = checked(i, t)
		if t.Checked {
			st.Completed++
		}
		st.Tests[i] = t
	}
	return st
}

// truthy follows the loose boolean reading of values saved by earlier releases.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case nil:
		return false
	default:
		return true
	}
}
