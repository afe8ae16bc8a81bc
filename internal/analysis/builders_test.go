package analysis

import (
	"strings"
	"testing"

	"github.com/jonathan/placement-suite/internal/skills"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChecklist_Fallbacks(t *testing.T) {
	got := BuildChecklist(skills.Extract(""))
	require.Len(t, got, 4)
	for _, r := range got {
		assert.Len(t, r.Items, 5)
	}
	assert.Equal(t, "Round 3: Tech interview (projects + stack)", got[2].RoundTitle)
	assert.Equal(t, "Be ready to map your primary programming language to real problems.", got[2].Items[1])
	assert.Equal(t, "Practice explaining how you structure code and modules.", got[2].Items[2])
}

func TestBuildChecklist_StackLines(t *testing.T) {
	got := BuildChecklist(skills.Extracted{skills.Web: {"React"}, skills.Data: {"SQL"}})
	assert.Equal(t, "Revise React concepts: components, hooks, state management, routing.", got[2].Items[1])
	assert.Equal(t, "Review backend concepts: REST APIs, status codes, authentication.", got[2].Items[2])

	got = BuildChecklist(skills.Extracted{skills.Web: {"REST"}})
	assert.Equal(t, "Review backend concepts: REST APIs, status codes, authentication.", got[2].Items[2])
}

func TestBuildSevenDayPlan(t *testing.T) {
	plain := BuildSevenDayPlan(skills.Extracted{})
	require.Len(t, plain, 7)
	assert.Equal(t, "Day 1", plain[0].Day)
	assert.Equal(t, "Revision & Weak Areas", plain[6].Focus)
	assert.Equal(t, "Practice explaining how you would store and query data in general.", plain[1].Tasks[2])
	assert.Equal(t, "Prepare to explain one main project deeply (requirements, design, trade-offs).", plain[4].Tasks[1])

	stack := BuildSevenDayPlan(skills.Extracted{skills.Web: {"React"}, skills.Data: {"SQL"}})
	assert.Equal(t, "Review SQL joins, aggregations, and indexing examples.", stack[1].Tasks[2])
	assert.Equal(t, "Walk through your React projects and be ready to explain architecture and trade-offs.", stack[4].Tasks[1])
}

func TestBuildLikelyQuestions(t *testing.T) {
	generic := BuildLikelyQuestions(skills.Extract(""))
	assert.Equal(t, genericQuestions, generic)

	dsa := BuildLikelyQuestions(skills.Extracted{skills.CoreCS: {"DSA"}})
	assert.Len(t, dsa, 7)
	assert.Equal(t, "How would you optimize search in a large, mostly sorted dataset?", dsa[0])
	assert.Equal(t, genericQuestions[0], dsa[3])

	full := BuildLikelyQuestions(skills.Extracted{
		skills.CoreCS:      {"DSA"},
		skills.Data:        {"SQL"},
		skills.Web:         {"React", "Node.js"},
		skills.CloudDevops: {"AWS"},
	})
	assert.Len(t, full, MaxQuestions)
	assert.Equal(t, "Explain how you would secure a Node.js/Express API for authenticated candidates.", full[9])
}

func TestComputeReadinessScore(t *testing.T) {
	sixCategories := "DSA, Java, React, SQL, AWS, Selenium"
	extracted := skills.Extract(sixCategories)
	require.Equal(t, 6, extracted.CategoryCount())

	assert.Equal(t, 40, ComputeReadinessScore("", "", "", skills.Extract("")))
	assert.Equal(t, 65, ComputeReadinessScore(sixCategories, "", "", extracted))
	assert.Equal(t, 85, ComputeReadinessScore(sixCategories, "Acme", "SDE", extracted))
	assert.Equal(t, 75, ComputeReadinessScore(sixCategories, "  ", "SDE", extracted))

	long := sixCategories + strings.Repeat(" filler", 120)
	assert.Equal(t, 95, ComputeReadinessScore(long, "Acme", "SDE", skills.Extract(long)))
}

func TestComputeAdjustedScore(t *testing.T) {
	all := []string{"DSA", "React", "SQL"}

	assert.Equal(t, 60, ComputeAdjustedScore(60, nil, nil))
	assert.Equal(t, 54, ComputeAdjustedScore(60, nil, all))
	assert.Equal(t, 58, ComputeAdjustedScore(60, map[string]string{"DSA": types.ConfidenceKnow}, all))
	assert.Equal(t, 66, ComputeAdjustedScore(60, map[string]string{"DSA": "know", "React": "know", "SQL": "know"}, all))
	assert.Equal(t, 100, ComputeAdjustedScore(99, map[string]string{"DSA": "know", "React": "know", "SQL": "know"}, all))
	assert.Equal(t, 0, ComputeAdjustedScore(1, map[string]string{"DSA": "practice"}, all))
}

func TestWeakSkills(t *testing.T) {
	entry := types.AnalysisEntry{
		ExtractedSkills: types.SkillSet{
			CoreCS: []string{"DSA", "OOP"},
			Web:    []string{"React", "Node.js"},
		},
		SkillConfidenceMap: map[string]string{"DSA": "know", "React": "practice", "OOP": "unsure"},
	}
	assert.Equal(t, []string{"React", "Node.js"}, WeakSkills(entry))

	entry.SkillConfidenceMap = nil
	assert.Equal(t, []string{"DSA", "OOP", "React"}, WeakSkills(entry))
}
