package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/placement-suite/internal/ats"
	"github.com/jonathan/placement-suite/internal/observability"
	"github.com/jonathan/placement-suite/internal/platform"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Score a resume for ATS completeness",
	Long: "Scores the saved resume (or --resume file) against the ATS rubric and prints the " +
		"suggestions for every unmet line, followed by per-bullet writing guidance.",
	Args: cobra.NoArgs,
	RunE: runATS,
}

var (
	atsResumePath string
	atsNoBullets  bool
	atsJSON       bool
)

func init() {
	atsCmd.Flags().StringVarP(&atsResumePath, "resume", "r", "", "Score a resume JSON file instead of the saved resume")
	atsCmd.Flags().BoolVar(&atsNoBullets, "no-bullets", false, "Skip bullet guidance")
	atsCmd.Flags().BoolVar(&atsJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(atsCmd)
}

func runATS(cmd *cobra.Command, _ []string) error {
	var resume *types.ResumeRecord
	if atsResumePath != "" {
		r, err := readResumeFile(atsResumePath)
		if err != nil {
			return err
		}
		resume = r
	} else {
		resume = savedResume(app.store)
	}
	return printATS(cmd.OutOrStdout(), resume, !atsNoBullets, atsJSON)
}

// atsReport is the JSON form of the ats command.
type atsReport struct {
	ats.Result
	Band    ats.Band                    `json:"band"`
	Bullets map[string][]ats.BulletLine `json:"bullets,omitempty"`
}

func printATS(out io.Writer, resume *types.ResumeRecord, withBullets, asJSON bool) error {
	res := ats.Compute(resume)
	blocks := bulletBlocks(resume)

	if asJSON {
		report := atsReport{Result: res, Band: ats.BandFor(res.Score)}
		if withBullets {
			report.Bullets = map[string][]ats.BulletLine{}
			for _, b := range blocks {
				report.Bullets[b.label] = ats.BulletLines(b.text)
			}
		}
		return writeJSON(out, report)
	}

	p := observability.NewPrinter(out)
	p.PrintATS(res)
	if !withBullets {
		return nil
	}
	for _, b := range blocks {
		_, _ = fmt.Fprintln(out, b.label)
		p.PrintBullets(ats.BulletLines(b.text))
	}
	return nil
}

type bulletBlock struct {
	label string
	text  string
}

// bulletBlocks returns the experience details and project descriptions that have text.
func bulletBlocks(resume *types.ResumeRecord) []bulletBlock {
	if resume == nil {
		return nil
	}
	var blocks []bulletBlock
	for _, e := range resume.Experience {
		if e.Details != "" {
			blocks = append(blocks, bulletBlock{label: fmt.Sprintf("Experience: %s at %s", orUnnamed(e.Role), orUnnamed(e.Company)), text: e.Details})
		}
	}
	for _, p := range resume.Projects {
		if p.Description != "" {
			blocks = append(blocks, bulletBlock{label: "Project: " + orUnnamed(p.Name), text: p.Description})
		}
	}
	return blocks
}

func orUnnamed(s string) string {
	if s == "" {
		return "(unnamed)"
	}
	return s
}

// readResumeFile decodes a resume JSON document. Legacy shapes (comma-separated skills,
// project "url") are accepted.
func readResumeFile(path string) (*types.ResumeRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	var r types.ResumeRecord
	if err := json.Unmarshal(content, &r); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &r, nil
}

// savedResume returns the resume in the platform state, or nil when none is saved.
func savedResume(s storage.Store) *types.ResumeRecord {
	return platform.Load(s, now()).ResumeData
}
