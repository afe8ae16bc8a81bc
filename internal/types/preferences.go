package types

import "github.com/go-playground/validator/v10"

// DefaultMinMatchScore is the threshold used when a profile does not set one.
const DefaultMinMatchScore = 40

// PreferenceProfile is the normalized job-tracker preference profile.
// RoleKeywords and Skills are lowercase; an empty ExperienceLevel means any band.
type PreferenceProfile struct {
	RoleKeywords       []string `json:"roleKeywords"`
	PreferredLocations []string `json:"preferredLocations"`
	PreferredMode      []string `json:"preferredMode"`
	ExperienceLevel    string   `json:"experienceLevel"`
	Skills             []string `json:"skills"`
	MinMatchScore      int      `json:"minMatchScore" validate:"min=0,max=100"`
}

// Validate validates the PreferenceProfile using the validator.
func (p *PreferenceProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
