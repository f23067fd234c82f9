// Package matching provides skill-gap scoring between resumes and job
// requirements, job-to-job similarity, and reuse detection for previously
// generated resumes.
package matching

import (
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// SimilarityFunc computes a [0,1] similarity between two jobs' skill sets.
// The reuse checker accepts any implementation; WeightedJaccardSimilarity is
// the default.
type SimilarityFunc func(a, b *types.JobSkills) float64

// SimilarityWeights is the per-category weighting for the default job
// similarity measure.
type SimilarityWeights struct {
	Required  float64 `json:"required"`
	Preferred float64 `json:"preferred"`
	Soft      float64 `json:"soft"`
}

// DefaultSimilarityWeights weights required skills twice as heavily as
// preferred and four times as heavily as soft skills.
func DefaultSimilarityWeights() SimilarityWeights {
	return SimilarityWeights{Required: 2.0, Preferred: 1.0, Soft: 0.5}
}

// WeightedJaccardSimilarity builds the default similarity measure: the
// weighted average of per-category Jaccard overlaps. Two empty categories
// count as identical (similarity 1.0) rather than dissimilar.
func WeightedJaccardSimilarity(normalizer *skills.Normalizer, weights SimilarityWeights) SimilarityFunc {
	return func(a, b *types.JobSkills) float64 {
		requiredSim := skills.Jaccard(normalizer.NormalizeSet(a.RequiredSkills), normalizer.NormalizeSet(b.RequiredSkills))
		preferredSim := skills.Jaccard(normalizer.NormalizeSet(a.PreferredSkills), normalizer.NormalizeSet(b.PreferredSkills))
		softSim := skills.Jaccard(normalizer.NormalizeSet(a.SoftSkills), normalizer.NormalizeSet(b.SoftSkills))

		totalWeight := weights.Required + weights.Preferred + weights.Soft
		if totalWeight == 0 {
			return 0.0
		}

		return (requiredSim*weights.Required + preferredSim*weights.Preferred + softSim*weights.Soft) / totalWeight
	}
}
