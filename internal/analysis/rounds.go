package analysis

import (
	"fmt"

	"github.com/jonathan/placement-suite/internal/skills"
	"github.com/jonathan/placement-suite/internal/types"
)

// Round is one interview round of a mapping template.
type Round struct {
	RoundNumber  int    `json:"roundNumber"`
	Title        string `json:"title"`
	WhyItMatters string `json:"whyItMatters"`
}

var (
	enterpriseDSARounds = []Round{
		{1, "Online Test (DSA + Aptitude)", "Screens for fundamentals and speed; strong performance here is often mandatory to advance."},
		{2, "Technical (DSA + Core CS)", "Deep dive on data structures, algorithms, and core CS; interviewers expect clear reasoning and optimization."},
		{3, "Tech + Projects", "Validates real-world application; be ready to walk through design choices and trade-offs."},
		{4, "HR", "Final fit and expectations; clarity on goals and constraints helps both sides."},
	}
	enterpriseRounds = []Round{
		{1, "Aptitude / Screening", "Initial filter for logical and quantitative ability; consistent practice pays off."},
		{2, "Technical (Core + Stack)", "Assesses domain knowledge and problem-solving in your stack; structure your answers clearly."},
		{3, "Projects / System Discussion", "Shows how you apply knowledge; prepare concise project stories and one system you could design."},
		{4, "HR / Managerial", "Culture and communication fit; align your narrative with the role and company."},
	}
	startupStackRounds = []Round{
		{1, "Practical coding", "Demonstrates you can write and reason about code; focus on clarity and edge cases."},
		{2, "System discussion", "Shows how you think about architecture and trade-offs; one solid example is enough."},
		{3, "Culture fit", "Team wants to see how you collaborate and learn; be specific about past work and choices."},
	}
	startupWebRounds = []Round{
		{1, "Coding + Stack", "Combined technical screen; balance speed with correct, clean solutions."},
		{2, "Projects + Discussion", "Depth on what you have built; prepare 1–2 projects you can explain end-to-end."},
		{3, "Team fit", "Final alignment on role and expectations; ask thoughtful questions."},
	}
	genericRounds = []Round{
		{1, "Aptitude / Basics", "Baseline filter; consistent practice improves both speed and accuracy."},
		{2, "Technical (DSA + Core)", "Core of the process; structure your approach and communicate your reasoning."},
		{3, "Tech + Projects", "Bridges theory and practice; one strong project narrative helps."},
		{4, "HR", "Final check on fit and expectations; be clear and concise."},
	}
)

// BuildRoundMapping picks the interview template for the company size and detected
// skills. A nil intel is treated as a startup. Branches are evaluated in order and
// the first match wins.
func BuildRoundMapping(intel *types.CompanyIntel, extracted skills.Extracted) []Round {
	size := types.SizeStartup
	if intel != nil {
		size = intel.Size
	}

	hasDSA := extracted.HasAny(skills.CoreCS, "DSA", "OOP")
	hasWeb := len(extracted[skills.Web]) > 0
	hasReact := extracted.Has(skills.Web, "React")
	hasNode := extracted.HasAny(skills.Web, "Node.js", "Express")

	var template []Round
	switch {
	case size == types.SizeEnterprise && hasDSA:
		template = enterpriseDSARounds
	case size == types.SizeEnterprise:
		template = enterpriseRounds
	case size == types.SizeStartup && (hasReact || hasNode):
		template = startupStackRounds
	case size == types.SizeStartup && hasWeb:
		template = startupWebRounds
	default:
		template = genericRounds
	}
	return append([]Round(nil), template...)
}

// CanonicalRounds converts rounds into the stored round-mapping shape.
func CanonicalRounds(rounds []Round) []types.RoundMappingItem {
	out := make([]types.RoundMappingItem, 0, len(rounds))
	for _, r := range rounds {
		title := r.Title
		if title == "" {
			title = fmt.Sprintf("Round %d", r.RoundNumber)
		}
		out = append(out, types.RoundMappingItem{
			RoundTitle:   title,
			FocusAreas:   []string{},
			WhyItMatters: r.WhyItMatters,
		})
	}
	return out
}
