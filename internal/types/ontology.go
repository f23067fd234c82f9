// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

import "strings"

// OntologySkill is a canonical skill with metadata and known aliases.
type OntologySkill struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
}

// SkillOntology maps canonical skill names to metadata and resolves aliases.
// The zero value (empty ontology) is valid; matching then degrades to exact
// case-insensitive string comparison.
type SkillOntology struct {
	CanonicalSkills map[string]OntologySkill `json:"canonical_skills,omitempty"`
	Taxonomy        map[string][]string      `json:"taxonomy,omitempty"`

	// aliasIndex maps normalized alias -> canonical key. Built lazily.
	aliasIndex map[string]string
}

// normalizeKey lowercases and trims a skill name for map lookups.
func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FindSkill looks up a skill by canonical name or alias, case-insensitively.
// Returns nil when the skill is unknown to the ontology.
func (o *SkillOntology) FindSkill(name string) *OntologySkill {
	if o == nil || len(o.CanonicalSkills) == 0 {
		return nil
	}
	key := normalizeKey(name)
	if skill, ok := o.CanonicalSkills[key]; ok {
		return &skill
	}
	if o.aliasIndex == nil {
		o.buildAliasIndex()
	}
	if canonical, ok := o.aliasIndex[key]; ok {
		if skill, ok := o.CanonicalSkills[canonical]; ok {
			return &skill
		}
	}
	return nil
}

// AddSkill registers a skill under its normalized canonical name and
// updates the taxonomy for its category.
func (o *SkillOntology) AddSkill(skill OntologySkill) {
	key := normalizeKey(skill.Name)
	if key == "" {
		return
	}
	if o.CanonicalSkills == nil {
		o.CanonicalSkills = make(map[string]OntologySkill)
	}
	o.CanonicalSkills[key] = skill

	if skill.Category != "" {
		if o.Taxonomy == nil {
			o.Taxonomy = make(map[string][]string)
		}
		for _, existing := range o.Taxonomy[skill.Category] {
			if existing == key {
				o.aliasIndex = nil
				return
			}
		}
		o.Taxonomy[skill.Category] = append(o.Taxonomy[skill.Category], key)
	}
	o.aliasIndex = nil
}

// SkillsByCategory returns all skills registered under a taxonomy category.
func (o *SkillOntology) SkillsByCategory(category string) []OntologySkill {
	if o == nil || len(o.Taxonomy) == 0 {
		return nil
	}
	keys := o.Taxonomy[category]
	skills := make([]OntologySkill, 0, len(keys))
	for _, key := range keys {
		if skill, ok := o.CanonicalSkills[key]; ok {
			skills = append(skills, skill)
		}
	}
	return skills
}

func (o *SkillOntology) buildAliasIndex() {
	o.aliasIndex = make(map[string]string)
	for key, skill := range o.CanonicalSkills {
		for _, alias := range skill.Aliases {
			aliasKey := normalizeKey(alias)
			if aliasKey != "" {
				o.aliasIndex[aliasKey] = key
			}
		}
	}
}

// UserSkills is the set of skill names the candidate has affirmed possessing.
// When supplied it acts as an allow-list: generated content must never
// introduce a skill outside this set.
type UserSkills struct {
	Skills []string `json:"skills"`

	index map[string]bool
}

// NewUserSkills builds a UserSkills set from a list of affirmed skill names.
func NewUserSkills(skills []string) *UserSkills {
	u := &UserSkills{Skills: skills}
	u.buildIndex()
	return u
}

// Contains reports whether a skill is in the affirmed set, case-insensitively.
func (u *UserSkills) Contains(name string) bool {
	if u == nil {
		return false
	}
	if u.index == nil {
		u.buildIndex()
	}
	return u.index[normalizeKey(name)]
}

// AllSkillNames returns the affirmed skill names in their original order.
func (u *UserSkills) AllSkillNames() []string {
	if u == nil {
		return nil
	}
	return u.Skills
}

func (u *UserSkills) buildIndex() {
	u.index = make(map[string]bool, len(u.Skills))
	for _, skill := range u.Skills {
		key := normalizeKey(skill)
		if key != "" {
			u.index[key] = true
		}
	}
}
