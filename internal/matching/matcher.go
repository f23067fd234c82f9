// Package matching provides skill-gap scoring between resumes and job
// requirements, job-to-job similarity, and reuse detection for previously
// generated resumes.
package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Cap on how many skills a single recommendation names.
const maxSkillsPerRecommendation = 3

// FitWeights is the scoring policy for the fit score. Required-skill
// coverage is weighted higher than preferred-skill coverage; soft skills
// never affect the score.
type FitWeights struct {
	Required  float64 `json:"required"`
	Preferred float64 `json:"preferred"`
}

// DefaultFitWeights mirrors the 2:1 required:preferred weighting used in
// project scoring, for consistency across the engine.
func DefaultFitWeights() FitWeights {
	return FitWeights{Required: 2.0, Preferred: 1.0}
}

// SkillMatcher matches job requirements against resume skills.
// It is stateless aside from the ontology and weights fixed at construction,
// so repeated calls on identical input yield identical results.
type SkillMatcher struct {
	ontology   *types.SkillOntology
	normalizer *skills.Normalizer
	weights    FitWeights
}

// NewSkillMatcher creates a matcher over the given ontology and scoring
// policy. The ontology may be nil, which degrades matching to case-folded
// literal comparison.
func NewSkillMatcher(ontology *types.SkillOntology, weights FitWeights) *SkillMatcher {
	return &SkillMatcher{
		ontology:   ontology,
		normalizer: skills.NewNormalizer(ontology),
		weights:    weights,
	}
}

// MatchJob matches a resume against a job's skill lists and computes the fit
// score, gap report, and recommendations. It is pure and total over
// well-formed input: no combination of empty or non-overlapping skill sets
// is an error. A job with no required and no preferred skills trivially
// yields a fit score of 1.0, since there is nothing to fail to match.
func (m *SkillMatcher) MatchJob(resume *types.Resume, jobSkills *types.JobSkills) *types.JobMatch {
	resumeSkills := m.extractResumeSkills(resume)

	match := &types.JobMatch{}

	// Required skills: matches in job order, gaps for the rest.
	seen := make(map[string]bool)
	requiredMatches := 0
	for _, skill := range jobSkills.RequiredSkills {
		normalized := m.normalizer.Normalize(skill)
		if normalized == "" {
			continue
		}
		if m.skillMatches(normalized, resumeSkills) {
			requiredMatches++
			if !seen[normalized] {
				seen[normalized] = true
				match.MatchingSkills = append(match.MatchingSkills, skill)
			}
		} else {
			match.SkillGaps.RequiredMissing = append(match.SkillGaps.RequiredMissing, skill)
			// A required skill absent from both resume and ontology is one
			// the candidate likely does not have at all.
			if m.ontology.FindSkill(skill) == nil {
				match.MissingSkills = append(match.MissingSkills, skill)
			}
		}
	}

	// Preferred skills follow required matches in display order.
	preferredMatches := 0
	for _, skill := range jobSkills.PreferredSkills {
		normalized := m.normalizer.Normalize(skill)
		if normalized == "" {
			continue
		}
		if m.skillMatches(normalized, resumeSkills) {
			preferredMatches++
			if !seen[normalized] {
				seen[normalized] = true
				match.MatchingSkills = append(match.MatchingSkills, skill)
			}
		} else {
			match.SkillGaps.PreferredMissing = append(match.SkillGaps.PreferredMissing, skill)
		}
	}

	// Soft skills influence recommendations only.
	var softMissing []string
	for _, skill := range jobSkills.SoftSkills {
		normalized := m.normalizer.Normalize(skill)
		if normalized != "" && !m.skillMatches(normalized, resumeSkills) {
			softMissing = append(softMissing, skill)
		}
	}

	match.FitScore = m.fitScore(jobSkills, requiredMatches, preferredMatches)
	match.Recommendations = m.recommendations(match, softMissing)

	return match
}

// fitScore computes the weighted composite of required and preferred
// coverage fractions. A category's weight enters the denominator only when
// its skill list is non-empty; with both lists empty the score is trivially
// 1.0.
func (m *SkillMatcher) fitScore(jobSkills *types.JobSkills, requiredMatches, preferredMatches int) float64 {
	score := 0.0
	appliedWeight := 0.0

	if len(jobSkills.RequiredSkills) > 0 {
		coverage := float64(requiredMatches) / float64(len(jobSkills.RequiredSkills))
		score += coverage * m.weights.Required
		appliedWeight += m.weights.Required
	}
	if len(jobSkills.PreferredSkills) > 0 {
		coverage := float64(preferredMatches) / float64(len(jobSkills.PreferredSkills))
		score += coverage * m.weights.Preferred
		appliedWeight += m.weights.Preferred
	}

	if appliedWeight == 0 {
		return 1.0
	}

	score /= appliedWeight
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

// extractResumeSkills collects every skill the resume demonstrates: the
// categorized skills section, experience bullet skills, project bullet
// skills, and project tech stacks. All normalized and deduplicated.
func (m *SkillMatcher) extractResumeSkills(resume *types.Resume) map[string]bool {
	all := make(map[string]bool)

	add := func(names []string) {
		for _, name := range names {
			normalized := m.normalizer.Normalize(name)
			if normalized != "" {
				all[normalized] = true
			}
		}
	}

	for _, list := range resume.Skills {
		add(list)
	}
	for _, exp := range resume.Experience {
		for _, bullet := range exp.Bullets {
			add(bullet.Skills)
		}
	}
	for _, project := range resume.Projects {
		for _, bullet := range project.Bullets {
			add(bullet.Skills)
		}
		add(project.TechStack)
	}

	return all
}

// skillMatches reports whether a normalized job skill is demonstrated by the
// resume: direct membership first, then substring containment either way so
// "aws lambda" still matches a resume listing "aws".
func (m *SkillMatcher) skillMatches(jobSkill string, resumeSkills map[string]bool) bool {
	if resumeSkills[jobSkill] {
		return true
	}
	for resumeSkill := range resumeSkills {
		if strings.Contains(resumeSkill, jobSkill) || strings.Contains(jobSkill, resumeSkill) {
			return true
		}
	}
	return false
}

// recommendations generates deterministic, natural-language suggestions from
// the gap report. Stable across repeated calls on identical input.
func (m *SkillMatcher) recommendations(match *types.JobMatch, softMissing []string) []string {
	var recs []string

	if n := len(match.SkillGaps.RequiredMissing); n > 0 {
		recs = append(recs, fmt.Sprintf("Add %d required skills to resume: %s",
			n, joinFirst(match.SkillGaps.RequiredMissing, maxSkillsPerRecommendation)))
	}
	if n := len(match.SkillGaps.PreferredMissing); n > 0 {
		recs = append(recs, fmt.Sprintf("Consider adding %d preferred skills: %s",
			n, joinFirst(match.SkillGaps.PreferredMissing, maxSkillsPerRecommendation)))
	}
	if len(match.MissingSkills) > 0 {
		recs = append(recs, fmt.Sprintf("Learn or gain experience with: %s",
			joinFirst(match.MissingSkills, maxSkillsPerRecommendation)))
	}
	if len(softMissing) > 0 {
		recs = append(recs, fmt.Sprintf("Highlight soft skills the posting calls for: %s",
			joinFirst(softMissing, maxSkillsPerRecommendation)))
	}

	if len(recs) == 0 {
		recs = append(recs, "Resume matches job requirements well!")
	}

	return recs
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
