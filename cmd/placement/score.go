package main

import (
	"fmt"
	"io"

	"github.com/jonathan/placement-suite/internal/history"
	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/observability"
	"github.com/jonathan/placement-suite/internal/placement"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/tracker"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the overall Placement Score",
	Long: "Combines job match quality (30%), JD skill alignment from the latest analysis (25%), " +
		"resume ATS score (25%), application progress (10%) and practice completion (10%).",
	Args: cobra.NoArgs,
	RunE: runScore,
}

var (
	scorePracticeDone  int
	scorePracticeTotal int
	scoreJSON          bool
)

func init() {
	scoreCmd.Flags().IntVar(&scorePracticeDone, "practice-done", 0, "Practice sessions completed")
	scoreCmd.Flags().IntVar(&scorePracticeTotal, "practice-total", 0, "Practice sessions planned")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the score as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if scorePracticeDone < 0 || scorePracticeTotal < 0 {
		return fmt.Errorf("practice counts must not be negative")
	}
	// Without a catalog, job match quality counts as 0.
	var catalog []types.JobListing
	if app.cfg.Catalog != "" {
		loaded, err := loadCatalog()
		if err != nil {
			return err
		}
		catalog = loaded
	}
	in := placementInputs(app.store, catalog, scorePracticeDone, scorePracticeTotal)
	return printScore(cmd.OutOrStdout(), placement.Compute(in), scoreJSON)
}

// placementInputs gathers every component of the Placement Score from stored state.
func placementInputs(s storage.Store, catalog []types.JobListing, practiceDone, practiceTotal int) placement.Inputs {
	in := placement.Inputs{
		JobMatchQuality:     float64(jobs.JobMatchQuality(catalog, jobs.LoadPreferences(s))),
		Resume:              savedResume(s),
		ApplicationProgress: float64(tracker.ApplicationProgressScore(newTracker(s).Counts())),
		PracticeCompletion:  placement.PracticeCompletion(practiceDone, practiceTotal),
	}
	if latest := history.Latest(history.Load(s).Entries); latest != nil {
		in.JDSkillAlignment = float64(latest.FinalScore)
	}
	return in
}

func printScore(out io.Writer, score placement.Score, asJSON bool) error {
	if asJSON {
		return writeJSON(out, score)
	}
	observability.NewPrinter(out).PrintPlacement(score)
	return nil
}
