// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// JobPosting represents a job posting as delivered by an upstream extractor.
type JobPosting struct {
	Company     string     `json:"company" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Location    string     `json:"location,omitempty"`
	Description string     `json:"description,omitempty"`
	SourceURL   string     `json:"source_url,omitempty"`
	DatePosted  *time.Time `json:"date_posted,omitempty"`
}

// Validate validates the JobPosting using the validator.
func (p *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// JobSkills holds the skill lists extracted from a job posting.
// Insertion order is significant for display; upstream extraction does not
// guarantee deduplication.
type JobSkills struct {
	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	SoftSkills      []string `json:"soft_skills,omitempty"`
}

// IsEmpty reports whether the job carries no skills in any category.
func (j *JobSkills) IsEmpty() bool {
	return len(j.RequiredSkills) == 0 && len(j.PreferredSkills) == 0 && len(j.SoftSkills) == 0
}

// SkillGaps groups the skills a job asks for that the resume does not
// demonstrate. Soft skills never appear here; they only influence
// recommendations.
type SkillGaps struct {
	RequiredMissing  []string `json:"required_missing,omitempty"`
	PreferredMissing []string `json:"preferred_missing,omitempty"`
}

// IsEmpty reports whether no gaps were found in either category.
func (g *SkillGaps) IsEmpty() bool {
	return len(g.RequiredMissing) == 0 && len(g.PreferredMissing) == 0
}

// JobMatch is the result of matching a resume against a job's skills.
// It is derived per invocation and never persisted.
type JobMatch struct {
	FitScore        float64   `json:"fit_score"`
	MatchingSkills  []string  `json:"matching_skills,omitempty"`
	MissingSkills   []string  `json:"missing_skills,omitempty"`
	SkillGaps       SkillGaps `json:"skill_gaps"`
	Recommendations []string  `json:"recommendations,omitempty"`
}

// Validate checks that the fit score is within the normalized range.
func (m *JobMatch) Validate() error {
	if m.FitScore < 0.0 || m.FitScore > 1.0 {
		return fmt.Errorf("fit score must be between 0 and 1, got %g", m.FitScore)
	}
	return nil
}
