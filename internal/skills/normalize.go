// Package skills provides skill-name canonicalization and relatedness checks
// backed by an optional skill ontology.
package skills

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Normalizer canonicalizes skill names. Canonicalization is applied once at
// every ingestion boundary so core logic compares canonical forms only.
// A nil or empty ontology degrades to case-folded literal comparison.
type Normalizer struct {
	ontology *types.SkillOntology
}

// NewNormalizer creates a Normalizer over the given ontology.
// The ontology may be nil.
func NewNormalizer(ontology *types.SkillOntology) *Normalizer {
	return &Normalizer{ontology: ontology}
}

// Normalize returns the canonical comparison form of a skill name:
// the ontology's canonical name when the ontology resolves it (directly or
// via alias), otherwise the case-folded, whitespace-trimmed literal.
func (n *Normalizer) Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if n != nil && n.ontology != nil {
		if skill := n.ontology.FindSkill(trimmed); skill != nil {
			return strings.ToLower(skill.Name)
		}
	}
	return strings.ToLower(trimmed)
}

// NormalizeAll normalizes a list of skill names, dropping empties and
// deduplicating while preserving first-seen order.
func (n *Normalizer) NormalizeAll(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		normalized := n.Normalize(name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// NormalizeSet normalizes a list of skill names into a membership set.
func (n *Normalizer) NormalizeSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		normalized := n.Normalize(name)
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// SameCategory reports whether two skills share an ontology category.
// Always false without an ontology or when either skill is unresolved.
func (n *Normalizer) SameCategory(a, b string) bool {
	if n == nil || n.ontology == nil {
		return false
	}
	skillA := n.ontology.FindSkill(a)
	skillB := n.ontology.FindSkill(b)
	if skillA == nil || skillB == nil {
		return false
	}
	return skillA.Category != "" && skillA.Category == skillB.Category
}
