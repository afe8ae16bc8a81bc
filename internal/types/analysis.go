package types

// CurrentSchemaVersion is the version stamped on every normalized analysis entry.
// Records without a version are legacy and are migrated by shape.
const CurrentSchemaVersion = 2

// Skill confidence values kept in AnalysisEntry.SkillConfidenceMap.
const (
	ConfidenceKnow     = "know"
	ConfidencePractice = "practice"
)

// AnalysisEntry is one JD analysis run in canonical shape.
type AnalysisEntry struct {
	SchemaVersion      int                `json:"schemaVersion"`
	ID                 string             `json:"id"`
	CreatedAt          string             `json:"createdAt"`
	UpdatedAt          string             `json:"updatedAt"`
	Company            string             `json:"company"`
	Role               string             `json:"role"`
	JDText             string             `json:"jdText"`
	ExtractedSkills    SkillSet           `json:"extractedSkills"`
	RoundMapping       []RoundMappingItem `json:"roundMapping"`
	Checklist          []ChecklistRound   `json:"checklist"`
	Plan7Days          []PlanDay          `json:"plan7Days"`
	Questions          []string           `json:"questions"`
	BaseScore          int                `json:"baseScore"`
	FinalScore         int                `json:"finalScore"`
	SkillConfidenceMap map[string]string  `json:"skillConfidenceMap"`
	CompanyIntel       *CompanyIntel      `json:"companyIntel"`
}

// SkillSet is the canonical seven-category skill mapping. Every category is always present.
type SkillSet struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// All returns every skill in category order.
func (s SkillSet) All() []string {
	var out []string
	for _, group := range [][]string{s.CoreCS, s.Languages, s.Web, s.Data, s.Cloud, s.Testing, s.Other} {
		out = append(out, group...)
	}
	return out
}

// RoundMappingItem is one interview round in canonical shape.
type RoundMappingItem struct {
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}

// ChecklistRound is a per-round preparation checklist.
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanDay is one day of the seven-day plan.
type PlanDay struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// CompanySize is the coarse size bucket of a company.
type CompanySize string

// Company size buckets. SizeMid is never produced by the current classifier.
const (
	SizeEnterprise CompanySize = "enterprise"
	SizeMid        CompanySize = "mid"
	SizeStartup    CompanySize = "startup"
)

// CompanyIntel is the heuristic company profile attached to an analysis.
type CompanyIntel struct {
	CompanyName        string      `json:"companyName"`
	Industry           string      `json:"industry"`
	SizeCategory       string      `json:"sizeCategory"`
	Size               CompanySize `json:"size"`
	TypicalHiringFocus string      `json:"typicalHiringFocus"`
}
