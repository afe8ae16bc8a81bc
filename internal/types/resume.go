package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ResumeRecord is the resume edited by the builder and scored by the ATS rubric.
type ResumeRecord struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Projects     []Project    `json:"projects"`
	Skills       ResumeSkills `json:"skills"`
	Links        ResumeLinks  `json:"links"`
}

// PersonalInfo holds contact details.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Education is one education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Dates       string `json:"dates"`
	Details     string `json:"details"`
}

// Experience is one work experience entry. Details holds newline-separated bullets.
type Experience struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Dates   string `json:"dates"`
	Details string `json:"details"`
}

// Project is one project entry.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
}

// UnmarshalJSON accepts the older project shape that stored the repository link as "url".
func (p *Project) UnmarshalJSON(data []byte) error {
	type alias Project
	var raw struct {
		alias
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Project(raw.alias)
	if p.GithubURL == "" {
		p.GithubURL = raw.URL
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	return nil
}

// ResumeSkills groups skills by kind.
type ResumeSkills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// Count returns the total number of skills across all groups.
func (s ResumeSkills) Count() int {
	return len(s.Technical) + len(s.Soft) + len(s.Tools)
}

// UnmarshalJSON accepts both the grouped object and the legacy comma-separated string,
// which is loaded into Technical. Any other JSON value yields empty groups.
func (s *ResumeSkills) UnmarshalJSON(data []byte) error {
	*s = ResumeSkills{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var legacy string
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil
		}
		s.Technical = SplitCommaList(legacy)
	case '{':
		var grouped struct {
			Technical []string `json:"technical"`
			Soft      []string `json:"soft"`
			Tools     []string `json:"tools"`
		}
		if err := json.Unmarshal(trimmed, &grouped); err != nil {
			return nil
		}
		s.Technical = grouped.Technical
		s.Soft = grouped.Soft
		s.Tools = grouped.Tools
	}
	return nil
}

// ResumeLinks holds profile links.
type ResumeLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// SplitCommaList splits a comma-separated string into trimmed, non-empty parts.
func SplitCommaList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
