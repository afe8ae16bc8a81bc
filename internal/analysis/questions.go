package analysis

import "github.com/jonathan/placement-suite/internal/skills"

// MaxQuestions caps the likely-question list.
const MaxQuestions = 10

var genericQuestions = []string{
	"Walk me through one of your recent projects end-to-end.",
	"Tell me about a bug or failure you faced and how you resolved it.",
	"How do you approach learning a new technology under a tight deadline?",
	"Describe how you would prepare in the 24 hours before an important interview.",
}

// BuildLikelyQuestions returns up to ten interview questions for the detected skills,
// padded with generic questions.
func BuildLikelyQuestions(extracted skills.Extracted) []string {
	var questions []string

	if extracted.HasAny(skills.CoreCS, "DSA", "OOP") {
		questions = append(questions,
			"How would you optimize search in a large, mostly sorted dataset?",
			"Explain the trade-offs between arrays, linked lists, and hash maps.",
			"Describe a time you used dynamic programming and how you identified overlapping subproblems.",
		)
	}
	if extracted.Has(skills.Data, "SQL") {
		questions = append(questions,
			"Explain indexing in SQL and when it helps or hurts performance.",
			"How would you design a schema for tracking candidates and interviews?",
		)
	}
	if extracted.Has(skills.Web, "React") {
		questions = append(questions,
			"Explain state management options in React and when you would lift state.",
			"How do you handle API loading, error, and empty states in a React UI?",
			"What are the trade-offs between client-side and server-side rendering for a React app?",
		)
	}
	if extracted.HasAny(skills.Web, "Node.js", "Express") {
		questions = append(questions,
			"How would you design a REST API for managing interview schedules?",
			"Explain how you would secure a Node.js/Express API for authenticated candidates.",
		)
	}
	if _, ok := extracted[skills.CloudDevops]; ok {
		questions = append(questions,
			"How would you deploy a simple web service using your preferred cloud provider?",
			"Explain how you would set up CI/CD for a small placement prep application.",
		)
	}

	if missing := MaxQuestions - len(questions); missing > 0 {
		questions = append(questions, genericQuestions[:min(missing, len(genericQuestions))]...)
	}
	return questions[:min(MaxQuestions, len(questions))]
}
