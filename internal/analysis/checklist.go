package analysis

import (
	"github.com/jonathan/placement-suite/internal/skills"
	"github.com/jonathan/placement-suite/internal/types"
)

// BuildChecklist returns the four-round preparation checklist. Round 3 adapts to a
// detected frontend (React) or backend (Node.js, Express, REST or SQL) stack.
func BuildChecklist(extracted skills.Extracted) []types.ChecklistRound {
	hasFrontend := extracted.Has(skills.Web, "React")
	hasBackend := extracted.HasAny(skills.Web, "Node.js", "Express", "REST") || extracted.Has(skills.Data, "SQL")

	stackLine := "Be ready to map your primary programming language to real problems."
	if hasFrontend {
		stackLine = "Revise React concepts: components, hooks, state management, routing."
	}
	backendLine := "Practice explaining how you structure code and modules."
	if hasBackend {
		backendLine = "Review backend concepts: REST APIs, status codes, authentication."
	}

	return []types.ChecklistRound{
		{
			RoundTitle: "Round 1: Aptitude / Basics",
			Items: []string{
				"Brush up on quantitative aptitude and logical reasoning sets.",
				"Revise basic programming constructs (loops, conditionals, functions).",
				"Review Core CS definitions: DSA, OOP, DBMS, OS, Networks.",
				"Prepare concise introductions for yourself and your projects.",
				"Solve at least 2 timed mixed-topic aptitude tests.",
			},
		},
		{
			RoundTitle: "Round 2: DSA + Core CS",
			Items: []string{
				"Revise arrays, strings, hash maps, and basic recursion problems.",
				"Practice time and space complexity analysis on recent questions.",
				"Review common data structures: stacks, queues, trees, graphs.",
				"Prepare short explanations for DBMS normalization and indexing.",
				"Revisit OS topics: processes vs threads, scheduling, deadlocks.",
			},
		},
		{
			RoundTitle: "Round 3: Tech interview (projects + stack)",
			Items: []string{
				"Prepare 2–3 projects you can explain end-to-end in 5 minutes each.",
				stackLine,
				backendLine,
				"Prepare 3 design decisions in your projects and why you made them.",
				"Have 2–3 questions ready to ask about the team and tech stack.",
			},
		},
		{
			RoundTitle: "Round 4: Managerial / HR",
			Items: []string{
				"Prepare stories for teamwork, conflict, and ownership using STAR format.",
				"Reflect on failures or bugs and how you resolved them.",
				"Clarify your relocation, work preference, and joining timelines.",
				"Practice answering 'Why this company?' and 'Why this role?'",
				"Rehearse salary expectation and negotiation calmly and clearly.",
			},
		},
	}
}
