// Package types provides type definitions for structured data used throughout the placement suite.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// WorkMode is where a job is performed.
type WorkMode string

// Work modes offered by the job catalog.
const (
	ModeRemote WorkMode = "Remote"
	ModeHybrid WorkMode = "Hybrid"
	ModeOnsite WorkMode = "Onsite"
)

// ExperienceBand is the experience range a listing targets.
type ExperienceBand string

// Experience bands offered by the job catalog.
const (
	ExperienceFresher ExperienceBand = "Fresher"
	ExperienceZeroOne ExperienceBand = "0-1"
	ExperienceOneThr  ExperienceBand = "1-3"
	ExperienceThrFive ExperienceBand = "3-5"
)

// JobSource is the board a listing was collected from.
type JobSource string

// Known job boards.
const (
	SourceLinkedIn JobSource = "LinkedIn"
	SourceNaukri   JobSource = "Naukri"
	SourceIndeed   JobSource = "Indeed"
)

// JobListing is a single catalog entry. Listings are reference data and are never
// mutated; derived values such as the match score live on wrapper types.
type JobListing struct {
	ID            string         `json:"id" yaml:"id" validate:"required"`
	Title         string         `json:"title" yaml:"title" validate:"required"`
	Company       string         `json:"company" yaml:"company" validate:"required"`
	Location      string         `json:"location" yaml:"location"`
	Mode          WorkMode       `json:"mode" yaml:"mode" validate:"omitempty,oneof=Remote Hybrid Onsite"`
	Experience    ExperienceBand `json:"experience" yaml:"experience" validate:"omitempty,oneof=Fresher 0-1 1-3 3-5"`
	SalaryRange   string         `json:"salaryRange" yaml:"salaryRange"`
	Skills        []string       `json:"skills" yaml:"skills"`
	Description   string         `json:"description" yaml:"description"`
	Source        JobSource      `json:"source" yaml:"source" validate:"omitempty,oneof=LinkedIn Naukri Indeed"`
	PostedDaysAgo int            `json:"postedDaysAgo" yaml:"postedDaysAgo" validate:"min=0"`
	ApplyURL      string         `json:"applyUrl" yaml:"applyUrl" validate:"omitempty,url"`
}

// Validate validates the JobListing using the validator.
func (j *JobListing) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
