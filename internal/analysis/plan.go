package analysis

import (
	"github.com/jonathan/placement-suite/internal/skills"
	"github.com/jonathan/placement-suite/internal/types"
)

// BuildSevenDayPlan returns the day-by-day preparation plan. Day 2 adapts to SQL and
// day 5 to React.
func BuildSevenDayPlan(extracted skills.Extracted) []types.PlanDay {
	dataTask := "Practice explaining how you would store and query data in general."
	if extracted.Has(skills.Data, "SQL") {
		dataTask = "Review SQL joins, aggregations, and indexing examples."
	}
	projectTask := "Prepare to explain one main project deeply (requirements, design, trade-offs)."
	if extracted.Has(skills.Web, "React") {
		projectTask = "Walk through your React projects and be ready to explain architecture and trade-offs."
	}

	return []types.PlanDay{
		{
			Day:   "Day 1",
			Focus: "Basics & Core CS – part 1",
			Tasks: []string{
				"Revise programming basics and language syntax you will use in interviews.",
				"Refresh Core CS summaries: DSA, OOP, DBMS, OS, Networks.",
				"Read through 1–2 high quality CS notes or your own condensed sheets.",
			},
		},
		{
			Day:   "Day 2",
			Focus: "Basics & Core CS – part 2",
			Tasks: []string{
				"Solve 4–5 easy coding problems to warm up.",
				"Deep dive on 2 core CS topics that are weaker for you.",
				dataTask,
			},
		},
		{
			Day:   "Day 3",
			Focus: "DSA & Coding Practice – part 1",
			Tasks: []string{
				"Focus on arrays, strings, and hashing questions under time constraints.",
				"Analyze your solutions for edge cases and complexity.",
				"Note 3 patterns you see recurring in questions.",
			},
		},
		{
			Day:   "Day 4",
			Focus: "DSA & Coding Practice – part 2",
			Tasks: []string{
				"Work on recursion, DP, and graph/trees problems.",
				"Revisit at least 2 problems you previously found hard.",
				"Summarize key templates you will reuse in interviews.",
			},
		},
		{
			Day:   "Day 5",
			Focus: "Projects & Resume Alignment",
			Tasks: []string{
				"Clean up your resume to reflect skills mentioned in the JD.",
				projectTask,
				"Ensure every line on your resume has a story and metric where possible.",
			},
		},
		{
			Day:   "Day 6",
			Focus: "Mock Interviews",
			Tasks: []string{
				"Run at least one timed mock DSA round using past questions.",
				"Run a second mock focused on system / project explanation.",
				"Capture notes on where you hesitated or over-explained.",
			},
		},
		{
			Day:   "Day 7",
			Focus: "Revision & Weak Areas",
			Tasks: []string{
				"Review your notes, flashcards, and tricky problems from earlier days.",
				"Revisit 2–3 weak topics from Core CS or your primary stack.",
				"Do a light mock HR/behavioral round with a friend or by recording yourself.",
			},
		},
	}
}
