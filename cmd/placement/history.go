package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonathan/placement-suite/internal/analysis"
	"github.com/jonathan/placement-suite/internal/history"
	"github.com/jonathan/placement-suite/internal/observability"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and update saved JD analyses",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res := history.Load(app.store)
		observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(res.Entries, res.Skipped)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an analysis (default the latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showAnalysis(cmd.OutOrStdout(), app.store, optionalArg(args))
	},
}

var historyConfidenceCmd = &cobra.Command{
	Use:   "confidence <id> <skill> <know|practice>",
	Short: "Mark how well you know a skill and update the score",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfidence(cmd.OutOrStdout(), app.store, args[0], args[1], args[2])
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export the plan, checklist or questions of an analysis",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryExport,
}

var (
	exportWhat string
	exportOut  string
)

// Export sections.
const (
	exportPlan      = "plan"
	exportChecklist = "checklist"
	exportQuestions = "questions"
	exportAll       = "all"
)

func init() {
	historyExportCmd.Flags().StringVarP(&exportWhat, "what", "w", exportAll, "Section to export: plan, checklist, questions or all")
	historyExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyConfidenceCmd, historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// findAnalysis returns the entry with id, or the latest entry when id is empty.
// Entries saved before company intel existed are backfilled and written back.
func findAnalysis(s storage.Store, id string) (types.AnalysisEntry, error) {
	entries := history.Load(s).Entries
	var entry *types.AnalysisEntry
	if id == "" {
		entry = history.Latest(entries)
	} else {
		entry = history.Find(entries, id)
	}
	if entry == nil {
		if id == "" {
			return types.AnalysisEntry{}, fmt.Errorf("no analyses yet; run 'placement analyze' first")
		}
		return types.AnalysisEntry{}, fmt.Errorf("analysis %q not found", id)
	}

	found := *entry
	if analysis.Backfill(&found) {
		if _, err := history.Update(s, found, now()); err != nil {
			return types.AnalysisEntry{}, fmt.Errorf("failed to save backfilled analysis: %w", err)
		}
	}
	return found, nil
}

func showAnalysis(out io.Writer, s storage.Store, id string) error {
	entry, err := findAnalysis(s, id)
	if err != nil {
		return err
	}
	observability.NewPrinter(out).PrintAnalysis(entry, nil)
	_, _ = fmt.Fprintln(out, exportText(entry, exportAll))
	if weak := analysis.WeakSkills(entry); len(weak) > 0 {
		_, _ = fmt.Fprintf(out, "\nNext: focus on %s.\n", strings.Join(weak, ", "))
	}
	return nil
}

func setConfidence(out io.Writer, s storage.Store, id, skill, level string) error {
	if level != types.ConfidenceKnow && level != types.ConfidencePractice {
		return fmt.Errorf("invalid confidence %q (want know or practice)", level)
	}
	entry, err := findAnalysis(s, id)
	if err != nil {
		return err
	}
	if !slices.Contains(entry.ExtractedSkills.All(), skill) {
		return fmt.Errorf("skill %q was not detected in analysis %s", skill, id)
	}

	updated := analysis.SetConfidence(entry, skill, level, now())
	if _, err := history.Update(s, updated, now()); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	_, _ = fmt.Fprintf(out, "%s marked %q. Score: %d (base %d)\n", skill, level, updated.FinalScore, updated.BaseScore)
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	switch exportWhat {
	case exportPlan, exportChecklist, exportQuestions, exportAll:
	default:
		return fmt.Errorf("unknown section %q (want plan, checklist, questions or all)", exportWhat)
	}
	entry, err := findAnalysis(app.store, optionalArg(args))
	if err != nil {
		return err
	}
	text := exportText(entry, exportWhat)

	if exportOut == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if dir := filepath.Dir(exportOut); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(exportOut, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write export file %s: %w", exportOut, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", exportWhat, exportOut)
	return nil
}

// exportText renders the requested section. "all" joins every section with headings.
func exportText(entry types.AnalysisEntry, what string) string {
	switch what {
	case exportPlan:
		return analysis.FormatPlanText(entry.Plan7Days)
	case exportChecklist:
		return analysis.FormatChecklistText(entry.Checklist)
	case exportQuestions:
		return analysis.FormatQuestionsText(entry.Questions)
	}
	return strings.Join([]string{
		"7-Day Plan\n\n" + analysis.FormatPlanText(entry.Plan7Days),
		"Round-wise Checklist\n\n" + analysis.FormatChecklistText(entry.Checklist),
		"10 Likely Interview Questions\n\n" + analysis.FormatQuestionsText(entry.Questions),
	}, "\n\n")
}
