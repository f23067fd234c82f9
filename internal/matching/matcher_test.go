package matching

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResume(skillLists ...[]string) *types.Resume {
	resume := &types.Resume{Name: "Jane Doe"}
	for _, list := range skillLists {
		resume.Experience = append(resume.Experience, types.ExperienceItem{
			Organization: "Acme",
			Bullets:      []types.Bullet{{Text: "Did the work", Skills: list}},
		})
	}
	return resume
}

func TestMatchJob_EmptyJobSkillsIsTriviallyPerfect(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	resume := testResume([]string{"Python"})

	match := matcher.MatchJob(resume, &types.JobSkills{})

	assert.Equal(t, 1.0, match.FitScore)
	assert.True(t, match.SkillGaps.IsEmpty())
	assert.Empty(t, match.MatchingSkills)
}

func TestMatchJob_PartialRequiredCoverage(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	resume := testResume([]string{"Python"})

	job := &types.JobSkills{
		RequiredSkills:  []string{"Python", "Kubernetes"},
		PreferredSkills: []string{"Go"},
	}

	match := matcher.MatchJob(resume, job)

	assert.Equal(t, []string{"Python"}, match.MatchingSkills)
	assert.Equal(t, []string{"Kubernetes"}, match.SkillGaps.RequiredMissing)
	assert.Equal(t, []string{"Go"}, match.SkillGaps.PreferredMissing)
	assert.Greater(t, match.FitScore, 0.0)
	assert.Less(t, match.FitScore, 1.0)
}

func TestMatchJob_FullCoverage(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	resume := testResume([]string{"Python", "Kubernetes", "Go"})

	job := &types.JobSkills{
		RequiredSkills:  []string{"Python", "Kubernetes"},
		PreferredSkills: []string{"Go"},
	}

	match := matcher.MatchJob(resume, job)

	assert.Equal(t, 1.0, match.FitScore)
	assert.True(t, match.SkillGaps.IsEmpty())
	assert.Equal(t, []string{"Python", "Kubernetes", "Go"}, match.MatchingSkills)
	assert.Equal(t, []string{"Resume matches job requirements well!"}, match.Recommendations)
}

func TestMatchJob_RequiredWeighsMoreThanPreferred(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())

	job := &types.JobSkills{
		RequiredSkills:  []string{"Python"},
		PreferredSkills: []string{"Go"},
	}

	requiredOnly := matcher.MatchJob(testResume([]string{"Python"}), job)
	preferredOnly := matcher.MatchJob(testResume([]string{"Go"}), job)

	assert.Greater(t, requiredOnly.FitScore, preferredOnly.FitScore)
}

func TestMatchJob_MoreRequiredMissingNeverRaisesScore(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	resume := testResume([]string{"Python"})

	smallerGap := matcher.MatchJob(resume, &types.JobSkills{
		RequiredSkills: []string{"Python", "Kubernetes"},
	})
	largerGap := matcher.MatchJob(resume, &types.JobSkills{
		RequiredSkills: []string{"Python", "Kubernetes", "Terraform"},
	})

	assert.GreaterOrEqual(t, smallerGap.FitScore, largerGap.FitScore)
}

func TestMatchJob_OntologyAliasResolution(t *testing.T) {
	ontology := &types.SkillOntology{}
	ontology.AddSkill(types.OntologySkill{Name: "Kubernetes", Category: "devops", Aliases: []string{"k8s"}})

	matcher := NewSkillMatcher(ontology, DefaultFitWeights())
	resume := testResume([]string{"k8s"})

	match := matcher.MatchJob(resume, &types.JobSkills{RequiredSkills: []string{"Kubernetes"}})

	assert.Equal(t, 1.0, match.FitScore)
	assert.Equal(t, []string{"Kubernetes"}, match.MatchingSkills)
}

func TestMatchJob_MissingSkillsExcludesOntologyKnown(t *testing.T) {
	ontology := &types.SkillOntology{}
	ontology.AddSkill(types.OntologySkill{Name: "Kubernetes", Category: "devops"})

	matcher := NewSkillMatcher(ontology, DefaultFitWeights())
	resume := testResume([]string{"Python"})

	match := matcher.MatchJob(resume, &types.JobSkills{
		RequiredSkills: []string{"Kubernetes", "COBOL"},
	})

	// Kubernetes is in the ontology, so only COBOL is genuinely missing.
	assert.Equal(t, []string{"Kubernetes", "COBOL"}, match.SkillGaps.RequiredMissing)
	assert.Equal(t, []string{"COBOL"}, match.MissingSkills)
}

func TestMatchJob_MatchingSkillsDeduplicated(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	resume := testResume([]string{"Python"})

	// Upstream extraction does not guarantee deduplication.
	match := matcher.MatchJob(resume, &types.JobSkills{
		RequiredSkills: []string{"Python", "python"},
	})

	assert.Equal(t, []string{"Python"}, match.MatchingSkills)
}

func TestMatchJob_Idempotent(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	resume := testResume([]string{"Python", "Docker"})
	job := &types.JobSkills{
		RequiredSkills:  []string{"Python", "Kubernetes"},
		PreferredSkills: []string{"Docker"},
		SoftSkills:      []string{"Communication"},
	}

	first := matcher.MatchJob(resume, job)
	second := matcher.MatchJob(resume, job)

	require.Equal(t, first, second)
}

func TestMatchJob_SoftSkillsDoNotAffectScore(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	resume := testResume([]string{"Python"})

	withSoft := matcher.MatchJob(resume, &types.JobSkills{
		RequiredSkills: []string{"Python"},
		SoftSkills:     []string{"Leadership", "Communication"},
	})
	withoutSoft := matcher.MatchJob(resume, &types.JobSkills{
		RequiredSkills: []string{"Python"},
	})

	assert.Equal(t, withoutSoft.FitScore, withSoft.FitScore)
	// Unmatched soft skills still surface in recommendations.
	assert.NotEqual(t, withoutSoft.Recommendations, withSoft.Recommendations)
}

func TestMatchJob_Recommendations(t *testing.T) {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	resume := testResume([]string{"Python"})

	match := matcher.MatchJob(resume, &types.JobSkills{
		RequiredSkills:  []string{"Python", "Kubernetes"},
		PreferredSkills: []string{"Go"},
	})

	require.Len(t, match.Recommendations, 3)
	assert.Contains(t, match.Recommendations[0], "Add 1 required skills")
	assert.Contains(t, match.Recommendations[0], "Kubernetes")
	assert.Contains(t, match.Recommendations[1], "Consider adding 1 preferred skills")
	assert.Contains(t, match.Recommendations[2], "Learn or gain experience with")
}
