package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/placement-suite/internal/analysis"
	"github.com/jonathan/placement-suite/internal/history"
	"github.com/jonathan/placement-suite/internal/logger"
	"github.com/jonathan/placement-suite/internal/observability"
	"github.com/jonathan/placement-suite/internal/schemas"
	"github.com/jonathan/placement-suite/internal/storage"
	embedded "github.com/jonathan/placement-suite/schemas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze job descriptions into a readiness plan",
	Long: "Extracts skills from one or more job descriptions, builds company intel, interview rounds, " +
		"a checklist, a 7-day plan and likely questions, scores readiness, and saves each analysis to history. " +
		"HTML job descriptions are reduced to text first.",
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJDFiles []string
	analyzeJDText  string
	analyzeJSON    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeCompany, "company", "c", "", "Company name")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Role title")
	analyzeCmd.Flags().StringSliceVarP(&analyzeJDFiles, "jd", "j", nil, "Job description file (text or HTML); repeatable")
	analyzeCmd.Flags().StringVar(&analyzeJDText, "jd-text", "", "Job description text")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the saved entries as JSON")
	analyzeCmd.MarkFlagsOneRequired("jd", "jd-text")
	analyzeCmd.MarkFlagsMutuallyExclusive("jd", "jd-text")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	texts := []string{analyzeJDText}
	if len(analyzeJDFiles) > 0 {
		loaded, err := readJDFiles(cmd.Context(), analyzeJDFiles)
		if err != nil {
			return err
		}
		texts = loaded
	}
	return analyzeJDs(cmd.OutOrStdout(), app.store, analyzeCompany, analyzeRole, texts, analyzeJSON)
}

// readJDFiles reads every file concurrently and returns their text in argument order.
func readJDFiles(ctx context.Context, paths []string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	texts := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read job description %s: %w", path, err)
			}
			text := string(content)
			if analysis.LooksLikeHTML(text) {
				if text, err = analysis.PlainText(text); err != nil {
					return fmt.Errorf("failed to clean job description %s: %w", path, err)
				}
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// analyzeJDs analyzes each text in order and saves every result to history.
func analyzeJDs(out io.Writer, s storage.Store, company, role string, texts []string, asJSON bool) error {
	log := logger.Component("analyze")
	p := observability.NewPrinter(out)

	var saved []json.RawMessage
	for _, text := range texts {
		res, err := analysis.Analyze(analysis.Input{Company: company, Role: role, JDText: text}, now())
		if err != nil {
			return err
		}
		if err := schemas.ValidateValue(embedded.AnalysisEntry, res.Entry); err != nil {
			return fmt.Errorf("analysis failed schema validation: %w", err)
		}
		if _, err := history.Add(s, res.Entry); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		log.Debug().Str("id", res.Entry.ID).Int("score", res.Entry.BaseScore).Msg("analysis saved")

		if asJSON {
			data, err := json.Marshal(res.Entry)
			if err != nil {
				return fmt.Errorf("failed to marshal analysis: %w", err)
			}
			saved = append(saved, data)
			continue
		}
		p.PrintAnalysis(res.Entry, res.Warnings)
		_, _ = fmt.Fprintf(out, "Saved as %s\n", res.Entry.ID)
	}

	if asJSON {
		return writeJSON(out, saved)
	}
	return nil
}
