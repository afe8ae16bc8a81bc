package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/observability"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Score, filter and save job listings",
}

var jobsScoreCmd = &cobra.Command{
	Use:     "score",
	Aliases: []string{"list"},
	Short:   "Score the catalog against your preferences",
	Long:    "Filters the job catalog, scores every remaining listing against the saved preference profile and prints them in the chosen order.",
	Args:    cobra.NoArgs,
	RunE:    runJobsScore,
}

var jobsSaveCmd = &cobra.Command{
	Use:   "save <job-id>",
	Short: "Add a job to the saved list",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsSave,
}

var jobsUnsaveCmd = &cobra.Command{
	Use:   "unsave <job-id>",
	Short: "Remove a job from the saved list",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsUnsave,
}

var jobsSavedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Show the saved jobs",
	Args:  cobra.NoArgs,
	RunE:  runJobsSaved,
}

var (
	jobsFilter jobs.FilterState
	jobsLimit  int
	jobsJSON   bool
)

func init() {
	f := jobsScoreCmd.Flags()
	f.StringVarP(&jobsFilter.Keyword, "keyword", "k", "", "Match title or company")
	f.StringVar(&jobsFilter.Location, "location", "", "Exact location")
	f.StringVar(&jobsFilter.Mode, "mode", "", "Exact work mode (Remote, Hybrid, Onsite)")
	f.StringVar(&jobsFilter.Experience, "experience", "", "Exact experience band")
	f.StringVar(&jobsFilter.Source, "source", "", "Exact source (LinkedIn, Naukri, Indeed)")
	f.StringVar(&jobsFilter.Status, "status", "", "Exact pipeline status")
	f.BoolVar(&jobsFilter.ShowOnlyMatches, "only-matches", false, "Only show jobs at or above your minimum match score")
	f.StringVar(&jobsFilter.Sort, "sort", jobs.SortLatest, "Sort order: latest, match or salary")
	f.IntVarP(&jobsLimit, "limit", "n", 10, "Number of jobs to print")
	f.BoolVar(&jobsJSON, "json", false, "Print JSON instead of a table")

	jobsCmd.AddCommand(jobsScoreCmd, jobsSaveCmd, jobsUnsaveCmd, jobsSavedCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsScore(cmd *cobra.Command, _ []string) error {
	switch jobsFilter.Sort {
	case jobs.SortLatest, jobs.SortMatch, jobs.SortSalary:
	default:
		return fmt.Errorf("unknown sort %q (want latest, match or salary)", jobsFilter.Sort)
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	return scoreJobs(cmd.OutOrStdout(), app.store, catalog, jobsFilter, jobsLimit, jobsJSON)
}

// scoreJobs prints the filtered and scored catalog.
func scoreJobs(out io.Writer, s storage.Store, catalog []types.JobListing, state jobs.FilterState, limit int, asJSON bool) error {
	t := newTracker(s)
	prefs := jobs.LoadPreferences(s)
	list := jobs.FilterAndSort(catalog, state, prefs, t.Status)

	if asJSON {
		if limit > 0 && len(list) > limit {
			list = list[:limit]
		}
		return writeJSON(out, list)
	}
	if prefs == nil {
		_, _ = fmt.Fprintln(out, "Set your preferences to activate intelligent matching.")
	}
	observability.NewPrinter(out).PrintJobs(list, t.Status, limit)
	return nil
}

func runJobsSave(cmd *cobra.Command, args []string) error {
	setSaved(cmd.OutOrStdout(), app.store, args[0], true)
	return nil
}

func runJobsUnsave(cmd *cobra.Command, args []string) error {
	setSaved(cmd.OutOrStdout(), app.store, args[0], false)
	return nil
}

// setSaved adds or removes id from the saved list and reports the new total.
func setSaved(out io.Writer, s storage.Store, id string, save bool) {
	t := newTracker(s)
	was := t.IsSaved(id)
	switch {
	case save && was:
		_, _ = fmt.Fprintf(out, "%s is already saved (%d saved)\n", id, len(t.SavedIDs()))
	case save:
		t.Save(id)
		_, _ = fmt.Fprintf(out, "Saved %s (%d saved)\n", id, len(t.SavedIDs()))
	case was:
		t.Unsave(id)
		_, _ = fmt.Fprintf(out, "Removed %s (%d saved)\n", id, len(t.SavedIDs()))
	default:
		_, _ = fmt.Fprintf(out, "%s was not saved (%d saved)\n", id, len(t.SavedIDs()))
	}
}

func runJobsSaved(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	return printSaved(cmd.OutOrStdout(), app.store, catalog)
}

// printSaved prints the saved jobs that are still in the catalog, in catalog order.
func printSaved(out io.Writer, s storage.Store, catalog []types.JobListing) error {
	t := newTracker(s)
	ids := t.SavedIDs()
	saved := make([]types.JobListing, 0, len(ids))
	for _, j := range catalog {
		if slices.Contains(ids, j.ID) {
			saved = append(saved, j)
		}
	}
	if len(saved) == 0 {
		_, _ = fmt.Fprintln(out, "No saved jobs. Save jobs from the list to view them here.")
		return nil
	}
	list := jobs.Score(saved, jobs.LoadPreferences(s))
	observability.NewPrinter(out).PrintJobs(list, t.Status, len(list))
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
