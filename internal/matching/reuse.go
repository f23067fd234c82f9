// Package matching provides skill-gap scoring between resumes and job
// requirements, job-to-job similarity, and reuse detection for previously
// generated resumes.
package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/types"
)

// StoredResume is a previously generated resume as returned by the store,
// together with the job skills it was generated for.
type StoredResume struct {
	ID          uuid.UUID
	Resume      *types.Resume
	JobSkills   *types.JobSkills
	GeneratedAt time.Time
}

// ResumeStore is the persistence collaborator the reuse checker queries.
type ResumeStore interface {
	// ListGeneratedResumes returns all stored resumes with their
	// originating job skills and generation timestamps.
	ListGeneratedResumes(ctx context.Context) ([]StoredResume, error)
}

// ReuseCandidate is a stored resume that qualifies for reuse against a new job.
type ReuseCandidate struct {
	ID          uuid.UUID
	Resume      *types.Resume
	FitScore    float64
	Similarity  float64
	GeneratedAt time.Time
}

// ReuseChecker decides whether a previously generated resume can be reused
// unchanged for a new job.
type ReuseChecker struct {
	store      ResumeStore
	matcher    *SkillMatcher
	similarity SimilarityFunc
}

// NewReuseChecker creates a reuse checker. The similarity function is
// pluggable; pass nil to use WeightedJaccardSimilarity with default weights.
func NewReuseChecker(store ResumeStore, matcher *SkillMatcher, similarity SimilarityFunc) *ReuseChecker {
	if similarity == nil {
		similarity = WeightedJaccardSimilarity(matcher.normalizer, DefaultSimilarityWeights())
	}
	return &ReuseChecker{
		store:      store,
		matcher:    matcher,
		similarity: similarity,
	}
}

// FindReusableResume searches stored resumes for one that can be reused
// unchanged for the target job. A candidate qualifies only when its
// recomputed fit score meets minFitScore AND its job similarity meets
// minSimilarity; among qualifiers the highest fit wins, ties broken by the
// most recent generation timestamp. Returns (nil, nil) when no stored resume
// exists or none qualifies; reuse is an optimization, never required.
func (c *ReuseChecker) FindReusableResume(ctx context.Context, target *types.JobSkills, minFitScore, minSimilarity float64) (*ReuseCandidate, error) {
	stored, err := c.store.ListGeneratedResumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored resumes: %w", err)
	}

	var best *ReuseCandidate
	for _, candidate := range stored {
		if candidate.Resume == nil || candidate.JobSkills == nil {
			continue
		}

		similarity := c.similarity(target, candidate.JobSkills)
		if similarity < minSimilarity {
			continue
		}

		match := c.matcher.MatchJob(candidate.Resume, target)
		if match.FitScore < minFitScore {
			continue
		}

		if best == nil ||
			match.FitScore > best.FitScore ||
			(match.FitScore == best.FitScore && candidate.GeneratedAt.After(best.GeneratedAt)) {
			best = &ReuseCandidate{
				ID:          candidate.ID,
				Resume:      candidate.Resume,
				FitScore:    match.FitScore,
				Similarity:  similarity,
				GeneratedAt: candidate.GeneratedAt,
			}
		}
	}

	return best, nil
}
