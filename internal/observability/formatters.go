// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/placement-suite/internal/ats"
	"github.com/jonathan/placement-suite/internal/checklist"
	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/placement"
	"github.com/jonathan/placement-suite/internal/skills"
	"github.com/jonathan/placement-suite/internal/tracker"
	"github.com/jonathan/placement-suite/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, part := range wrap(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, part)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// wrap splits line on spaces into parts of at most width runes. Continuation parts
// keep the line's indentation; words longer than a part are broken.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}
	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	if len(indent) >= width/2 {
		indent = ""
	}
	room := width - len(indent)

	var parts []string
	var cur []rune
	flush := func() {
		parts = append(parts, indent+string(cur))
		cur = cur[:0]
	}
	for _, word := range strings.Fields(line) {
		w := []rune(word)
		for len(w) > room {
			if len(cur) > 0 {
				flush()
			}
			cur = append(cur, w[:room]...)
			flush()
			w = w[room:]
		}
		switch {
		case len(w) == 0:
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= room:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			flush()
			cur = append(cur, w...)
		}
	}
	if len(cur) > 0 {
		flush()
	}
	if len(parts) == 0 {
		return []string{""}
	}
	return parts
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintJobs outputs the top scored jobs with their pipeline status.
func (p *Printer) PrintJobs(list []jobs.ScoredJob, statusOf jobs.StatusFunc, limit int) {
	if len(list) == 0 {
		p.printBox("MATCHED JOBS", "No jobs match your search.")
		return
	}
	if limit <= 0 {
		limit = maxItemsToShow
	}

	var sb strings.Builder
	count := min(len(list), limit)
	for i := 0; i < count; i++ {
		j := list[i]
		sb.WriteString(fmt.Sprintf("#%d  %s · %s\n", i+1, j.Title, j.Company))
		sb.WriteString(fmt.Sprintf("    %s | %s | %s | %s\n", j.Location, j.Mode, j.Experience, j.SalaryRange))
		match := "—"
		if j.MatchScore != nil {
			match = fmt.Sprintf("%d%%", *j.MatchScore)
		}
		status := types.StageSaved
		if statusOf != nil {
			status = statusOf(j.ID)
		}
		sb.WriteString(fmt.Sprintf("    Match: %s  Status: %s  Posted: %dd ago", match, status, j.PostedDaysAgo))
		if i < count-1 {
			sb.WriteString("\n\n")
		}
	}
	if len(list) > count {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more jobs", len(list)-count))
	}

	p.printBox(fmt.Sprintf("MATCHED JOBS (%d)", len(list)), sb.String())
}

// PrintDigest outputs a daily digest.
func (p *Printer) PrintDigest(d *types.DailyDigest) {
	if d == nil || len(d.Jobs) == 0 {
		p.printBox("DAILY DIGEST", "No matching roles today. Check again tomorrow.")
		return
	}

	var sb strings.Builder
	for i, j := range d.Jobs {
		sb.WriteString(fmt.Sprintf("%2d. %-32s %3d%%\n", i+1, truncate(j.Title+" · "+j.Company, 32), j.MatchScore))
	}
	p.printBox("DAILY DIGEST "+d.Date, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATS outputs a resume ATS score with its band and suggestions.
func (p *Printer) PrintATS(res ats.Result) {
	band := ats.BandFor(res.Score)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %d/100 (%s)\n", res.Score, band.Label))
	if len(res.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range res.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}
	p.printBox("RESUME ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBullets outputs the per-line bullet guidance of an experience or project block.
func (p *Printer) PrintBullets(lines []ats.BulletLine) {
	var sb strings.Builder
	flagged := 0
	for _, l := range lines {
		if len(l.Suggestions) == 0 {
			continue
		}
		flagged++
		sb.WriteString(fmt.Sprintf("%d. %s\n", l.Index, l.Line))
		for _, s := range l.Suggestions {
			sb.WriteString(fmt.Sprintf("   → %s\n", s))
		}
	}
	if flagged == 0 {
		p.printBox("BULLET GUIDANCE", "✅ Every bullet starts strong and shows impact.")
		return
	}
	p.printBox("BULLET GUIDANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs a JD analysis entry.
func (p *Printer) PrintAnalysis(e types.AnalysisEntry, warnings []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", orDash(e.Company)))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", orDash(e.Role)))
	if e.CompanyIntel != nil {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", e.CompanyIntel.Industry))
		sb.WriteString(fmt.Sprintf("Size:     %s\n", e.CompanyIntel.SizeCategory))
	}
	sb.WriteString(fmt.Sprintf("Score:    %d (base %d)\n", e.FinalScore, e.BaseScore))

	sb.WriteString("\nSkills:\n")
	internal := skills.ToInternal(e.ExtractedSkills)
	for _, c := range skills.Categories {
		if items := internal[c.Key]; len(items) > 0 {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", c.Label, strings.Join(items, ", ")))
		}
	}
	if items := internal[skills.Other]; len(items) > 0 {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", skills.Label(skills.Other), strings.Join(items, ", ")))
	}

	if len(e.RoundMapping) > 0 {
		sb.WriteString("\nRounds:\n")
		for _, r := range e.RoundMapping {
			sb.WriteString(fmt.Sprintf("  • %s\n", r.RoundTitle))
		}
	}

	p.printBox("JD ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
	for _, w := range warnings {
		fmt.Fprintf(p.out, "⚠ %s\n", w) //nolint:errcheck
	}
}

// PrintHistory outputs a one-line summary per stored analysis.
func (p *Printer) PrintHistory(entries []types.AnalysisEntry, skipped int) {
	var sb strings.Builder
	if len(entries) == 0 {
		sb.WriteString("No analyses yet.")
	}
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%s  %3d  %s", dateOf(e.CreatedAt), e.FinalScore, orDash(strings.TrimSpace(e.Company+" "+e.Role))))
		sb.WriteString(fmt.Sprintf("\n            id %s", e.ID))
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}
	if skipped > 0 {
		sb.WriteString(fmt.Sprintf("\n\n%d saved entr%s couldn't be loaded.", skipped, plural(skipped, "y", "ies")))
	}
	p.printBox("ANALYSIS HISTORY", sb.String())
}

// PrintPlacement outputs the Placement Score and its breakdown.
func (p *Printer) PrintPlacement(s placement.Score) {
	b := s.Breakdown
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Placement Score:      %d/100\n\n", s.Score))
	sb.WriteString(fmt.Sprintf("Job Match Quality:    %3d  (30%%)\n", b.JobMatchQuality))
	sb.WriteString(fmt.Sprintf("JD Skill Alignment:   %3d  (25%%)\n", b.JDSkillAlignment))
	sb.WriteString(fmt.Sprintf("Resume ATS:           %3d  (25%%)\n", b.ResumeATS))
	sb.WriteString(fmt.Sprintf("Application Progress: %3d  (10%%)\n", b.ApplicationProgress))
	sb.WriteString(fmt.Sprintf("Practice Completion:  %3d  (10%%)", b.PracticeCompletion))
	p.printBox("PLACEMENT SCORE", sb.String())
}

// PrintPipeline outputs the stage counts and the most recent status changes.
func (p *Printer) PrintPipeline(counts tracker.PipelineCounts, updates []types.StatusUpdateEvent) {
	var sb strings.Builder
	for _, stage := range types.PipelineStages {
		sb.WriteString(fmt.Sprintf("%-20s %d\n", stage, counts[stage]))
	}
	sb.WriteString(fmt.Sprintf("\nProgress score: %d/100", tracker.ApplicationProgressScore(counts)))
	p.printBox("APPLICATION PIPELINE", sb.String())

	if len(updates) == 0 {
		return
	}
	var ub strings.Builder
	ub.WriteString("Recent updates:\n")
	count := min(len(updates), maxItemsToShow)
	for i := 0; i < count; i++ {
		u := updates[i]
		ub.WriteString(fmt.Sprintf("  • %s · %s → %s (%s)\n", u.Title, u.Company, u.Status, dateOf(u.DateChanged)))
	}
	if len(updates) > count {
		ub.WriteString(fmt.Sprintf("  ... and %d more\n", len(updates)-count))
	}
	fmt.Fprint(p.out, ub.String()) //nolint:errcheck
}

// PrintChecklist outputs a QA checklist with its completion count.
func (p *Printer) PrintChecklist(title string, st checklist.Status) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tests Passed: %d / %d\n\n", st.Completed, len(st.Tests)))
	for _, t := range st.Tests {
		mark := "[ ]"
		if t.Checked {
			mark = "[x]"
		}
		sb.WriteString(fmt.Sprintf("%s %-14s %s\n", mark, t.ID, t.Label))
	}
	if !st.Done() {
		sb.WriteString(fmt.Sprintf("\nFix issues before shipping (%d remaining).", len(st.Tests)-st.Completed))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// dateOf returns the date part of an ISO timestamp.
func dateOf(stamp string) string {
	if len(stamp) >= 10 {
		return stamp[:10]
	}
	return orDash(stamp)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
