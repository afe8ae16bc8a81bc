package main

import (
	"fmt"
	"io"

	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/observability"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Track application status",
}

var statusSetCmd = &cobra.Command{
	Use:   "set <job-id> <status>",
	Short: "Move a job to a pipeline stage",
	Long: "Moves a job to one of: Saved, Applied, Interview Scheduled, Interview Completed, Offer, Rejected. " +
		"Changes away from Saved are added to the recent updates feed.",
	Args: cobra.ExactArgs(2),
	RunE: runStatusSet,
}

var statusListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show pipeline counts and recent updates",
	Args:  cobra.NoArgs,
	RunE:  runStatusList,
}

func init() {
	statusCmd.AddCommand(statusSetCmd, statusListCmd)
	rootCmd.AddCommand(statusCmd)
}

func runStatusSet(cmd *cobra.Command, args []string) error {
	// The catalog only enriches the update event; a status can be set without one.
	var catalog []types.JobListing
	if app.cfg.Catalog != "" {
		loaded, err := loadCatalog()
		if err != nil {
			return err
		}
		catalog = loaded
	}
	return setStatus(cmd.OutOrStdout(), app.store, catalog, args[0], types.PipelineStage(args[1]))
}

func setStatus(out io.Writer, s storage.Store, catalog []types.JobListing, jobID string, status types.PipelineStage) error {
	t := newTracker(s)
	if err := t.SetStatus(jobID, status, jobs.FindListing(catalog, jobID)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Status updated: %s → %s\n", jobID, status)
	return nil
}

func runStatusList(cmd *cobra.Command, _ []string) error {
	printPipeline(cmd.OutOrStdout(), app.store)
	return nil
}

func printPipeline(out io.Writer, s storage.Store) {
	t := newTracker(s)
	observability.NewPrinter(out).PrintPipeline(t.Counts(), t.Updates())
}
