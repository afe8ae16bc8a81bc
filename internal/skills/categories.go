// Package skills detects known skills in job description text and converts between
// the internal and canonical category shapes.
package skills

import "github.com/jonathan/placement-suite/internal/types"

// Internal category keys, in detection order.
const (
	CoreCS      = "coreCs"
	Languages   = "languages"
	Web         = "web"
	Data        = "data"
	CloudDevops = "cloudDevops"
	Testing     = "testing"
	Other       = "other"
)

// Category is one group of the fixed skill vocabulary.
type Category struct {
	Key   string
	Label string
	Items []string
}

// Categories is the ordered vocabulary scanned by Extract.
var Categories = []Category{
	{Key: CoreCS, Label: "Core CS", Items: []string{"DSA", "OOP", "DBMS", "OS", "Networks"}},
	{Key: Languages, Label: "Languages", Items: []string{"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go"}},
	{Key: Web, Label: "Web", Items: []string{"React", "Next.js", "Node.js", "Express", "REST", "GraphQL"}},
	{Key: Data, Label: "Data", Items: []string{"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"}},
	{Key: CloudDevops, Label: "Cloud / DevOps", Items: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux"}},
	{Key: Testing, Label: "Testing", Items: []string{"Selenium", "Cypress", "Playwright", "JUnit", "PyTest"}},
}

// GenericCompetencies fill the Other category when no known skill is detected.
var GenericCompetencies = []string{"Communication", "Problem solving", "Basic coding", "Projects"}

// Label returns the display label for an internal or canonical category key.
func Label(key string) string {
	switch key {
	case CoreCS, "coreCS":
		return "Core CS"
	case Languages:
		return "Languages"
	case Web:
		return "Web"
	case Data:
		return "Data"
	case CloudDevops, "cloud":
		return "Cloud / DevOps"
	case Testing:
		return "Testing"
	default:
		return "Other"
	}
}

// canonicalKey maps internal, legacy and canonical keys onto canonical keys. Unknown
// keys are dropped.
var canonicalKey = map[string]string{
	CoreCS:      "coreCS",
	"coreCS":    "coreCS",
	Languages:   "languages",
	Web:         "web",
	Data:        "data",
	CloudDevops: "cloud",
	"cloud":     "cloud",
	Testing:     "testing",
	"general":   "other",
	Other:       "other",
}

// sourceOrder fixes which key wins when several map onto the same canonical key.
var sourceOrder = []string{CoreCS, "coreCS", Languages, Web, Data, CloudDevops, "cloud", Testing, "general", Other}

// CanonicalKey returns the canonical key for an internal or legacy category key.
func CanonicalKey(key string) (string, bool) {
	k, ok := canonicalKey[key]
	return k, ok
}

// ToCanonical converts an internal mapping into the seven-key canonical set. Every
// canonical category is non-nil.
func ToCanonical(e Extracted) types.SkillSet {
	out := types.SkillSet{
		CoreCS:    []string{},
		Languages: []string{},
		Web:       []string{},
		Data:      []string{},
		Cloud:     []string{},
		Testing:   []string{},
		Other:     []string{},
	}
	for _, key := range sourceOrder {
		items, ok := e[key]
		if !ok || items == nil {
			continue
		}
		*canonicalSlot(&out, canonicalKey[key]) = append([]string{}, items...)
	}
	return out
}

// ToInternal converts a canonical set back into the internal mapping, keeping only
// non-empty categories.
func ToInternal(s types.SkillSet) Extracted {
	out := Extracted{}
	pairs := []struct {
		key   string
		items []string
	}{
		{CoreCS, s.CoreCS},
		{Languages, s.Languages},
		{Web, s.Web},
		{Data, s.Data},
		{CloudDevops, s.Cloud},
		{Testing, s.Testing},
		{Other, s.Other},
	}
	for _, p := range pairs {
		if len(p.items) > 0 {
			out[p.key] = append([]string{}, p.items...)
		}
	}
	return out
}

func canonicalSlot(s *types.SkillSet, key string) *[]string {
	switch key {
	case "coreCS":
		return &s.CoreCS
	case "languages":
		return &s.Languages
	case "web":
		return &s.Web
	case "data":
		return &s.Data
	case "cloud":
		return &s.Cloud
	case "testing":
		return &s.Testing
	default:
		return &s.Other
	}
}
