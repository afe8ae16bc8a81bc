package platform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/placement-suite/internal/types"
)

// Item id prefixes per resume section.
const (
	PrefixEducation  = "ed"
	PrefixExperience = "ex"
	PrefixProject    = "pr"
)

// Skill groups of a resume.
const (
	SkillTechnical = "technical"
	SkillSoft      = "soft"
	SkillTools     = "tools"
)

// SuggestedSkills are merged into a resume by SuggestSkills.
var SuggestedSkills = types.ResumeSkills{
	Technical: []string{"TypeScript", "React", "Node.js", "PostgreSQL", "GraphQL"},
	Soft:      []string{"Team Leadership", "Problem Solving"},
	Tools:     []string{"Git", "Docker", "AWS"},
}

// NewItemID returns a fresh id for a list item of the section with prefix.
func NewItemID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NormalizeResume returns a copy of r with every list non-nil and every list item
// carrying an id. A nil resume yields the empty resume.
func NormalizeResume(r *types.ResumeRecord) types.ResumeRecord {
	if r == nil {
		r = &types.ResumeRecord{}
	}
	out := *r

	out.Education = make([]types.Education, len(r.Education))
	for i, e := range r.Education {
		if e.ID == "" {
			e.ID = NewItemID(PrefixEducation)
		}
		out.Education[i] = e
	}
	out.Experience = make([]types.Experience, len(r.Experience))
	for i, e := range r.Experience {
		if e.ID == "" {
			e.ID = NewItemID(PrefixExperience)
		}
		out.Experience[i] = e
	}
	out.Projects = make([]types.Project, len(r.Projects))
	for i, p := range r.Projects {
		if p.ID == "" {
			p.ID = NewItemID(PrefixProject)
		}
		p.TechStack = nonNil(p.TechStack)
		out.Projects[i] = p
	}

	out.Skills = types.ResumeSkills{
		Technical: nonNil(r.Skills.Technical),
		Soft:      nonNil(r.Skills.Soft),
		Tools:     nonNil(r.Skills.Tools),
	}
	return out
}

// AddEducation appends an empty education entry and returns its index.
func AddEducation(r *types.ResumeRecord) int {
	r.Education = append(r.Education, types.Education{ID: NewItemID(PrefixEducation)})
	return len(r.Education) - 1
}

// AddExperience appends an empty experience entry and returns its index.
func AddExperience(r *types.ResumeRecord) int {
	r.Experience = append(r.Experience, types.Experience{ID: NewItemID(PrefixExperience)})
	return len(r.Experience) - 1
}

// AddProject appends an empty project and returns its index.
func AddProject(r *types.ResumeRecord) int {
	r.Projects = append(r.Projects, types.Project{ID: NewItemID(PrefixProject), TechStack: []string{}})
	return len(r.Projects) - 1
}

// UpdateEducation replaces the entry at index, keeping its id. Index len appends.
func UpdateEducation(r *types.ResumeRecord, index int, e types.Education) error {
	if err := checkIndex(index, len(r.Education), true); err != nil {
		return err
	}
	if index == len(r.Education) {
		AddEducation(r)
	}
	e.ID = r.Education[index].ID
	r.Education[index] = e
	return nil
}

// UpdateExperience replaces the entry at index, keeping its id. Index len appends.
func UpdateExperience(r *types.ResumeRecord, index int, e types.Experience) error {
	if err := checkIndex(index, len(r.Experience), true); err != nil {
		return err
	}
	if index == len(r.Experience) {
		AddExperience(r)
	}
	e.ID = r.Experience[index].ID
	r.Experience[index] = e
	return nil
}

// UpdateProject replaces the project at index, keeping its id. Index len appends.
func UpdateProject(r *types.ResumeRecord, index int, p types.Project) error {
	if err := checkIndex(index, len(r.Projects), true); err != nil {
		return err
	}
	if index == len(r.Projects) {
		AddProject(r)
	}
	p.ID = r.Projects[index].ID
	p.TechStack = nonNil(p.TechStack)
	r.Projects[index] = p
	return nil
}

// RemoveEducation deletes the entry at index.
func RemoveEducation(r *types.ResumeRecord, index int) error {
	if err := checkIndex(index, len(r.Education), false); err != nil {
		return err
	}
	r.Education = slices.Delete(r.Education, index, index+1)
	return nil
}

// RemoveExperience deletes the entry at index.
func RemoveExperience(r *types.ResumeRecord, index int) error {
	if err := checkIndex(index, len(r.Experience), false); err != nil {
		return err
	}
	r.Experience = slices.Delete(r.Experience, index, index+1)
	return nil
}

// RemoveProject deletes the project at index.
func RemoveProject(r *types.ResumeRecord, index int) error {
	if err := checkIndex(index, len(r.Projects), false); err != nil {
		return err
	}
	r.Projects = slices.Delete(r.Projects, index, index+1)
	return nil
}

// AddSkill appends a trimmed skill to a group unless it is blank or already present.
// It reports whether the resume changed.
func AddSkill(r *types.ResumeRecord, group, skill string) (bool, error) {
	list, err := skillGroup(r, group)
	if err != nil {
		return false, err
	}
	skill = strings.TrimSpace(skill)
	if skill == "" || slices.Contains(*list, skill) {
		return false, nil
	}
	*list = append(*list, skill)
	return true, nil
}

// RemoveSkill deletes the skill at index from a group.
func RemoveSkill(r *types.ResumeRecord, group string, index int) error {
	list, err := skillGroup(r, group)
	if err != nil {
		return err
	}
	if err := checkIndex(index, len(*list), false); err != nil {
		return err
	}
	*list = slices.Delete(*list, index, index+1)
	return nil
}

// SuggestSkills merges SuggestedSkills into every group, keeping existing order.
func SuggestSkills(r *types.ResumeRecord) {
	merge := func(existing, extra []string) []string {
		out := nonNil(existing)
		for _, s := range extra {
			if !slices.Contains(out, s) {
				out = append(out, s)
			}
		}
		return out
	}
	r.Skills.Technical = merge(r.Skills.Technical, SuggestedSkills.Technical)
	r.Skills.Soft = merge(r.Skills.Soft, SuggestedSkills.Soft)
	r.Skills.Tools = merge(r.Skills.Tools, SuggestedSkills.Tools)
}

// SampleResume returns demo content with fresh item ids.
func SampleResume() types.ResumeRecord {
	return NormalizeResume(&types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane.doe@example.com",
			Phone:    "+1 234 567 8900",
			Location: "San Francisco, CA",
		},
		Summary: "Software engineer with 4+ years of experience building web applications. " +
			"Strong focus on clean code, user experience, and collaborative delivery.",
		Education: []types.Education{{
			Institution: "State University",
			Degree:      "B.S. Computer Science",
			Dates:       "2016 – 2020",
			Details:     "Relevant coursework: Data Structures, Algorithms, Web Development.",
		}},
		Experience: []types.Experience{
			{
				Company: "Tech Corp",
				Role:    "Senior Software Engineer",
				Dates:   "2022 – Present",
				Details: "Lead frontend initiatives. Improved performance by 40%. Mentored 3 junior developers.",
			},
			{
				Company: "Startup Inc",
				Role:    "Software Engineer",
				Dates:   "2020 – 2022",
				Details: "Built customer-facing dashboards. Collaborated with design and product teams.",
			},
		},
		Projects: []types.Project{{
			Name:        "Open Source Library",
			Description: "Maintainer of a React component library with 2k+ GitHub stars.",
			TechStack:   []string{"React", "TypeScript"},
			GithubURL:   "https://github.com/example/lib",
		}},
		Skills: types.ResumeSkills{
			Technical: []string{"React", "TypeScript", "Node.js", "SQL"},
			Soft:      []string{"Communication", "Problem Solving"},
			Tools:     []string{"Git", "Docker"},
		},
		Links: types.ResumeLinks{GitHub: "https://github.com/janedoe", LinkedIn: "https://linkedin.com/in/janedoe"},
	})
}

func skillGroup(r *types.ResumeRecord, group string) (*[]string, error) {
	switch group {
	case SkillTechnical:
		return &r.Skills.Technical, nil
	case SkillSoft:
		return &r.Skills.Soft, nil
	case SkillTools:
		return &r.Skills.Tools, nil
	default:
		return nil, fmt.Errorf("unknown skill group %q", group)
	}
}

func checkIndex(index, n int, allowAppend bool) error {
	limit := n
	if allowAppend {
		limit = n + 1
	}
	if index < 0 || index >= limit {
		return fmt.Errorf("index %d out of range (have %d items)", index, n)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
