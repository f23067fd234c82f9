package rewriting

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rewriteTestResume() *types.Resume {
	return &types.Resume{
		Name: "Jane Doe",
		Experience: []types.ExperienceItem{
			{
				Organization: "Acme",
				Bullets: []types.Bullet{
					{Text: "Built data pipelines processing 2M events daily", Skills: []string{"Python"}},
				},
			},
		},
		Projects: []types.ProjectItem{
			{
				Name:      "Tracker",
				TechStack: []string{"Docker"},
				Bullets: []types.Bullet{
					{Text: "Containerized the build system", Skills: []string{"Docker"}},
				},
			},
		},
	}
}

func TestGenerateVariations_ProposesRelatedSkill(t *testing.T) {
	rewriter := NewRewriter(nil, nil, nil)
	match := &types.JobMatch{
		MatchingSkills: []string{"Python"},
		SkillGaps:      types.SkillGaps{RequiredMissing: []string{"pandas"}},
	}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	require.NotEmpty(t, proposals)
	first := proposals[0]
	assert.Equal(t, types.SectionExperience, first.Ref.Section)
	assert.Equal(t, []string{"pandas"}, first.SkillsAdded)
	assert.Contains(t, first.ProposedText, "pandas")
	assert.Contains(t, first.ProposedText, "Built data pipelines")
	assert.LessOrEqual(t, len(first.ProposedText), types.MaxBulletLength)
}

func TestGenerateVariations_NoGapsYieldsNoProposals(t *testing.T) {
	rewriter := NewRewriter(nil, nil, nil)
	match := &types.JobMatch{FitScore: 1.0}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	assert.Empty(t, proposals)
}

func TestGenerateVariations_SkipsAlreadyMentioned(t *testing.T) {
	rewriter := NewRewriter(nil, nil, nil)
	resume := &types.Resume{
		Name: "Jane Doe",
		Experience: []types.ExperienceItem{
			{
				Organization: "Acme",
				Bullets: []types.Bullet{
					{Text: "Automated reporting with pandas in Python", Skills: []string{"Python", "pandas"}},
				},
			},
		},
	}
	match := &types.JobMatch{
		SkillGaps: types.SkillGaps{RequiredMissing: []string{"pandas"}},
	}

	proposals := rewriter.GenerateVariations(context.Background(), resume, match)

	assert.Empty(t, proposals)
}

func TestGenerateVariations_UnrelatedSkillNotProposed(t *testing.T) {
	rewriter := NewRewriter(nil, nil, nil)
	match := &types.JobMatch{
		SkillGaps: types.SkillGaps{RequiredMissing: []string{"Photoshop"}},
	}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	assert.Empty(t, proposals)
}

func TestGenerateVariations_FabricationInvariant(t *testing.T) {
	userSkills := types.NewUserSkills([]string{"Python"})
	rewriter := NewRewriter(nil, userSkills, nil)
	match := &types.JobMatch{
		MatchingSkills: []string{"Python"},
		SkillGaps: types.SkillGaps{
			// kubernetes relates to the Docker project bullet but the
			// candidate never affirmed it; the proposal must be
			// suppressed, not replaced with a placeholder.
			RequiredMissing: []string{"Kubernetes", "pandas"},
		},
	}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	for _, proposal := range proposals {
		for _, added := range proposal.SkillsAdded {
			assert.True(t, userSkills.Contains(added),
				"proposal added skill %q outside the allow-list", added)
		}
	}
}

func TestGenerateVariations_ProjectBulletUsesTechStackContext(t *testing.T) {
	rewriter := NewRewriter(nil, nil, nil)
	match := &types.JobMatch{
		SkillGaps: types.SkillGaps{RequiredMissing: []string{"Kubernetes"}},
	}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	// Kubernetes relates to Docker via the related-technology table, so the
	// project bullet qualifies even though no bullet lists Kubernetes.
	require.Len(t, proposals, 1)
	assert.Equal(t, types.SectionProjects, proposals[0].Ref.Section)
	assert.Equal(t, "Tracker", proposals[0].Ref.ItemName)
}

func TestGenerateVariations_OntologyCategoryRelation(t *testing.T) {
	ontology := &types.SkillOntology{}
	ontology.AddSkill(types.OntologySkill{Name: "Terraform", Category: "devops"})
	ontology.AddSkill(types.OntologySkill{Name: "Docker", Category: "devops"})

	rewriter := NewRewriter(ontology, nil, nil)
	match := &types.JobMatch{
		SkillGaps: types.SkillGaps{RequiredMissing: []string{"Terraform"}},
	}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	require.Len(t, proposals, 1)
	assert.Equal(t, []string{"Terraform"}, proposals[0].SkillsAdded)
}

func TestGenerateVariations_LengthLimitSuppressesProposal(t *testing.T) {
	longText := strings.Repeat("x", types.MaxBulletLength-5)
	resume := &types.Resume{
		Name: "Jane Doe",
		Experience: []types.ExperienceItem{
			{
				Organization: "Acme",
				Bullets:      []types.Bullet{{Text: longText, Skills: []string{"Python"}}},
			},
		},
	}
	match := &types.JobMatch{
		SkillGaps: types.SkillGaps{RequiredMissing: []string{"pandas"}},
	}

	rewriter := NewRewriter(nil, nil, nil)
	proposals := rewriter.GenerateVariations(context.Background(), resume, match)

	assert.Empty(t, proposals)
}

func TestGenerateVariations_Deterministic(t *testing.T) {
	rewriter := NewRewriter(nil, nil, nil)
	match := &types.JobMatch{
		MatchingSkills: []string{"Python"},
		SkillGaps:      types.SkillGaps{RequiredMissing: []string{"pandas", "Kubernetes"}},
	}

	first := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)
	second := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	assert.Equal(t, first, second)
}

// scriptedRefiner returns a fixed refinement or error.
type scriptedRefiner struct {
	text string
	err  error
}

func (r scriptedRefiner) RefineBullet(_ context.Context, _, _ string) (string, error) {
	return r.text, r.err
}

func TestProposeText_RefinerOutputUsedWhenValid(t *testing.T) {
	refined := "Built data pipelines processing 2M events daily with pandas"
	rewriter := NewRewriter(nil, nil, scriptedRefiner{text: refined})
	match := &types.JobMatch{
		SkillGaps: types.SkillGaps{RequiredMissing: []string{"pandas"}},
	}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	require.NotEmpty(t, proposals)
	assert.Equal(t, refined, proposals[0].ProposedText)
}

func TestProposeText_RefinerFailureFallsBackToDeterministic(t *testing.T) {
	rewriter := NewRewriter(nil, nil, scriptedRefiner{err: errors.New("quota exceeded")})
	match := &types.JobMatch{
		SkillGaps: types.SkillGaps{RequiredMissing: []string{"pandas"}},
	}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	require.NotEmpty(t, proposals)
	assert.Contains(t, proposals[0].ProposedText, "using pandas")
}

func TestProposeText_RefinerOmittingSkillRejected(t *testing.T) {
	rewriter := NewRewriter(nil, nil, scriptedRefiner{text: "Did some unrelated great work"})
	match := &types.JobMatch{
		SkillGaps: types.SkillGaps{RequiredMissing: []string{"pandas"}},
	}

	proposals := rewriter.GenerateVariations(context.Background(), rewriteTestResume(), match)

	require.NotEmpty(t, proposals)
	assert.Contains(t, proposals[0].ProposedText, "using pandas")
}

func TestSkillsMentioned(t *testing.T) {
	mentioned := SkillsMentioned("Rewrote the ETL in Python and Go", []string{"Python", "Go", "Rust"})
	assert.Equal(t, []string{"Python", "Go"}, mentioned)

	assert.Empty(t, SkillsMentioned("Nothing relevant here", []string{"Python"}))
}
