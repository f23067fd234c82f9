// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxBulletLength is the hard character limit for a single bullet point.
const MaxBulletLength = 150

// BulletChange records one approved change applied to a bullet.
type BulletChange struct {
	OriginalText    string    `json:"original_text"`
	NewText         string    `json:"new_text"`
	Trigger         string    `json:"trigger,omitempty"`
	SkillsAdded     []string  `json:"skills_added,omitempty"`
	ApprovedByHuman bool      `json:"approved_by_human"`
	Timestamp       time.Time `json:"timestamp"`
}

// Bullet is a single bullet point with the skills it demonstrates.
type Bullet struct {
	Text    string         `json:"text" validate:"required,max=150"`
	Skills  []string       `json:"skills,omitempty"`
	History []BulletChange `json:"history,omitempty"`
}

// ExperienceItem is a work experience entry.
type ExperienceItem struct {
	Organization string   `json:"organization" validate:"required"`
	Role         string   `json:"role"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Bullets      []Bullet `json:"bullets,omitempty"`
}

// EducationItem is an education entry.
type EducationItem struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// ProjectItem is a project entry, either embedded in a resume or stored in the project library.
type ProjectItem struct {
	Name      string   `json:"name" validate:"required"`
	TechStack []string `json:"tech_stack,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []Bullet `json:"bullets,omitempty"`
}

// Resume is the root resume record with all sections.
type Resume struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Location string `json:"location,omitempty"`

	Experience []ExperienceItem    `json:"experience,omitempty" validate:"dive"`
	Education  []EducationItem     `json:"education,omitempty" validate:"dive"`
	Skills     map[string][]string `json:"skills,omitempty"`
	Projects   []ProjectItem       `json:"projects,omitempty" validate:"dive"`

	Version     int       `json:"version,omitempty"`
	DateCreated time.Time `json:"date_created,omitempty"`
	DateUpdated time.Time `json:"date_updated,omitempty"`
}

// Validate validates the Resume structure using the validator.
// Malformed input is rejected here, before any matching or scoring runs.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Clone returns a deep copy of the resume. The approval workflow mutates
// the copy so the caller's resume stays untouched if the workflow aborts.
func (r *Resume) Clone() *Resume {
	clone := *r

	clone.Experience = make([]ExperienceItem, len(r.Experience))
	for i, exp := range r.Experience {
		clone.Experience[i] = exp
		clone.Experience[i].Bullets = cloneBullets(exp.Bullets)
	}

	clone.Education = make([]EducationItem, len(r.Education))
	copy(clone.Education, r.Education)

	clone.Projects = make([]ProjectItem, len(r.Projects))
	for i, proj := range r.Projects {
		clone.Projects[i] = proj
		clone.Projects[i].TechStack = cloneStrings(proj.TechStack)
		clone.Projects[i].Bullets = cloneBullets(proj.Bullets)
	}

	if r.Skills != nil {
		clone.Skills = make(map[string][]string, len(r.Skills))
		for category, list := range r.Skills {
			clone.Skills[category] = cloneStrings(list)
		}
	}

	return &clone
}

func cloneBullets(bullets []Bullet) []Bullet {
	if bullets == nil {
		return nil
	}
	out := make([]Bullet, len(bullets))
	for i, b := range bullets {
		out[i] = b
		out[i].Skills = cloneStrings(b.Skills)
		if b.History != nil {
			out[i].History = make([]BulletChange, len(b.History))
			copy(out[i].History, b.History)
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
