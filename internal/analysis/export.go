package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-suite/internal/types"
)

// FormatPlanText renders the seven-day plan for copying.
func FormatPlanText(plan []types.PlanDay) string {
	blocks := make([]string, 0, len(plan))
	for _, d := range plan {
		blocks = append(blocks, d.Day+" – "+d.Focus+"\n"+bulletList(d.Tasks))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatChecklistText renders the round checklist for copying.
func FormatChecklistText(checklist []types.ChecklistRound) string {
	blocks := make([]string, 0, len(checklist))
	for _, r := range checklist {
		blocks = append(blocks, r.RoundTitle+"\n"+bulletList(r.Items))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatQuestionsText renders numbered questions for copying.
func FormatQuestionsText(questions []string) string {
	lines := make([]string, len(questions))
	for i, q := range questions {
		lines[i] = fmt.Sprintf("%d. %s", i+1, q)
	}
	return strings.Join(lines, "\n")
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "  • " + item
	}
	return strings.Join(lines, "\n")
}
