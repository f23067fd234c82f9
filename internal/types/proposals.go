// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

import "fmt"

// Section identifiers for bullet references.
const (
	SectionExperience = "experience"
	SectionProjects   = "projects"
)

// BulletRef identifies a specific bullet inside a resume by section and position.
type BulletRef struct {
	Section     string `json:"section"`
	ItemIndex   int    `json:"item_index"`
	BulletIndex int    `json:"bullet_index"`
	ItemName    string `json:"item_name,omitempty"`
}

// String returns a short human-readable identifier for the referenced bullet.
func (r BulletRef) String() string {
	return fmt.Sprintf("%s/%s[%d]", r.Section, r.ItemName, r.BulletIndex)
}

// BulletAt resolves a bullet reference against this resume.
// Returns an error when the reference points outside the resume's structure.
func (r *Resume) BulletAt(ref BulletRef) (*Bullet, error) {
	switch ref.Section {
	case SectionExperience:
		if ref.ItemIndex < 0 || ref.ItemIndex >= len(r.Experience) {
			return nil, fmt.Errorf("experience item index %d out of range", ref.ItemIndex)
		}
		bullets := r.Experience[ref.ItemIndex].Bullets
		if ref.BulletIndex < 0 || ref.BulletIndex >= len(bullets) {
			return nil, fmt.Errorf("bullet index %d out of range for experience item %q", ref.BulletIndex, r.Experience[ref.ItemIndex].Organization)
		}
		return &bullets[ref.BulletIndex], nil
	case SectionProjects:
		if ref.ItemIndex < 0 || ref.ItemIndex >= len(r.Projects) {
			return nil, fmt.Errorf("project item index %d out of range", ref.ItemIndex)
		}
		bullets := r.Projects[ref.ItemIndex].Bullets
		if ref.BulletIndex < 0 || ref.BulletIndex >= len(bullets) {
			return nil, fmt.Errorf("bullet index %d out of range for project %q", ref.BulletIndex, r.Projects[ref.ItemIndex].Name)
		}
		return &bullets[ref.BulletIndex], nil
	default:
		return nil, fmt.Errorf("unknown resume section %q", ref.Section)
	}
}

// RewriteProposal is a proposed rewrite for a single resume bullet.
// Derived per invocation, consumed by the approval workflow, never persisted.
type RewriteProposal struct {
	Ref          BulletRef `json:"ref"`
	OriginalText string    `json:"original_text"`
	ProposedText string    `json:"proposed_text"`
	SkillsAdded  []string  `json:"skills_added,omitempty"`
	Trigger      string    `json:"trigger,omitempty"`
}
