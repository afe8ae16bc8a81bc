package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/observability"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/spf13/cobra"
)

var jobsDigestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Show today's top 10 jobs",
	Long: "Builds the daily digest of the ten best-matching jobs. The first digest of a day is stored " +
		"and returned unchanged for the rest of that day, even if preferences or the catalog change.",
	Args: cobra.NoArgs,
	RunE: runJobsDigest,
}

var (
	digestDate string
	digestText bool
	digestJSON bool
	digestList bool
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func init() {
	jobsDigestCmd.Flags().StringVar(&digestDate, "date", "", "Digest date as YYYY-MM-DD (default today)")
	jobsDigestCmd.Flags().BoolVar(&digestText, "text", false, "Print the plain-text export")
	jobsDigestCmd.Flags().BoolVar(&digestJSON, "json", false, "Print the digest as JSON")
	jobsDigestCmd.Flags().BoolVar(&digestList, "list", false, "List the dates with a stored digest")
	jobsDigestCmd.MarkFlagsMutuallyExclusive("text", "json", "list")
	jobsDigestCmd.MarkFlagsMutuallyExclusive("date", "list")

	jobsCmd.AddCommand(jobsDigestCmd)
}

func runJobsDigest(cmd *cobra.Command, _ []string) error {
	if digestList {
		return listDigests(cmd.OutOrStdout(), app.store)
	}
	date := digestDate
	if date == "" {
		date = today()
	}
	if !datePattern.MatchString(date) {
		return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", date)
	}
	catalog, err := digestCatalog(app.store, date, loadCatalog)
	if err != nil {
		return err
	}
	return printDigest(cmd.OutOrStdout(), app.store, catalog, date, digestFormat())
}

// digestCatalog loads the catalog only when no digest is stored for date yet.
func digestCatalog(s storage.Store, date string, load func() ([]types.JobListing, error)) ([]types.JobListing, error) {
	get, _ := jobs.StoreDigestCache(s)
	if jobs.CachedDigest(date, get) != nil {
		return nil, nil
	}
	return load()
}

func digestFormat() string {
	switch {
	case digestText:
		return "text"
	case digestJSON:
		return "json"
	}
	return ""
}

// printDigest generates (or reloads) the digest for date and prints it in format:
// "text", "json" or the default table.
func printDigest(out io.Writer, s storage.Store, catalog []types.JobListing, date, format string) error {
	prefs := jobs.LoadPreferences(s)
	get, save := jobs.StoreDigestCache(s)
	d := jobs.GenerateDigest(date, catalog, prefs, nil, get, save)
	if d == nil {
		_, _ = fmt.Fprintln(out, "Set your preferences to generate a personalized digest.")
		return nil
	}

	switch format {
	case "text":
		_, _ = fmt.Fprintln(out, jobs.FormatDigestPlainText(d))
	case "json":
		return writeJSON(out, d)
	default:
		observability.NewPrinter(out).PrintDigest(d)
	}
	return nil
}

// listDigests prints the dates of every stored digest, oldest first.
func listDigests(out io.Writer, s storage.Store) error {
	lister, ok := s.(storage.Lister)
	if !ok {
		return fmt.Errorf("store does not support listing digests")
	}
	keys, err := lister.Keys(storage.KeyDigestPrefix)
	if err != nil {
		return fmt.Errorf("failed to list digests: %w", err)
	}
	if len(keys) == 0 {
		_, _ = fmt.Fprintln(out, "No digests stored yet.")
		return nil
	}
	for _, k := range keys {
		_, _ = fmt.Fprintln(out, strings.TrimPrefix(k, storage.KeyDigestPrefix))
	}
	return nil
}
