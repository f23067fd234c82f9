// Package selection provides relevance scoring and selection of candidate
// projects for a tailored resume.
package selection

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Scoring weights for project relevance signals.
const (
	weightTechVsRequired     = 2.0
	weightTechVsPreferred    = 1.0
	weightBulletsVsRequired  = 1.5
	weightBulletsVsPreferred = 1.0
	weightNameKeywords       = 0.5
)

// ProjectStore is the library collaborator the selector reads from.
type ProjectStore interface {
	GetAllProjects() ([]types.ProjectItem, error)
	AddProject(project types.ProjectItem) error
	RemoveProject(name string) (bool, error)
}

// ProjectSelector ranks library projects by relevance to a job's skill set.
// Stateless aside from the store and ontology fixed at construction.
type ProjectSelector struct {
	store      ProjectStore
	normalizer *skills.Normalizer
}

// NewProjectSelector creates a selector over the given store and ontology.
// The ontology may be nil.
func NewProjectSelector(store ProjectStore, ontology *types.SkillOntology) *ProjectSelector {
	return &ProjectSelector{
		store:      store,
		normalizer: skills.NewNormalizer(ontology),
	}
}

// SelectProjects scores every library project against the job's skills and
// returns the top maxProjects with score >= minScore, sorted descending by
// score with ties broken by original library order. An empty library or no
// project meeting the threshold yields an empty result, not an error.
func (s *ProjectSelector) SelectProjects(jobSkills *types.JobSkills, maxProjects int, minScore float64) ([]types.ProjectItem, error) {
	projects, err := s.store.GetAllProjects()
	if err != nil {
		return nil, &Error{Message: "failed to load project library", Cause: err}
	}
	if len(projects) == 0 || maxProjects <= 0 {
		return []types.ProjectItem{}, nil
	}

	type scoredProject struct {
		project types.ProjectItem
		score   float64
	}

	scored := make([]scoredProject, 0, len(projects))
	for _, project := range projects {
		score := s.ScoreProject(&project, jobSkills)
		if score >= minScore {
			scored = append(scored, scoredProject{project: project, score: score})
		}
	}

	// Stable sort keeps library order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > maxProjects {
		scored = scored[:maxProjects]
	}

	selected := make([]types.ProjectItem, len(scored))
	for i, sp := range scored {
		selected[i] = sp.project
	}
	return selected, nil
}

// ScoreProject computes a [0,1] relevance score for one project as a
// normalized weighted sum of Jaccard overlaps plus a name-keyword signal.
// A weight enters the denominator only when its job-skill list is non-empty,
// so absent required or preferred lists neither zero out nor inflate the
// score.
func (s *ProjectSelector) ScoreProject(project *types.ProjectItem, jobSkills *types.JobSkills) float64 {
	score := 0.0
	appliedWeight := 0.0

	techStack := s.normalizer.NormalizeSet(project.TechStack)

	bulletSkills := make(map[string]bool)
	for _, bullet := range project.Bullets {
		for _, skill := range bullet.Skills {
			if normalized := s.normalizer.Normalize(skill); normalized != "" {
				bulletSkills[normalized] = true
			}
		}
	}

	required := s.normalizer.NormalizeSet(jobSkills.RequiredSkills)
	preferred := s.normalizer.NormalizeSet(jobSkills.PreferredSkills)

	if len(required) > 0 {
		score += skills.Jaccard(techStack, required) * weightTechVsRequired
		appliedWeight += weightTechVsRequired
	}
	if len(preferred) > 0 {
		score += skills.Jaccard(techStack, preferred) * weightTechVsPreferred
		appliedWeight += weightTechVsPreferred
	}
	if len(required) > 0 && len(bulletSkills) > 0 {
		score += skills.Jaccard(bulletSkills, required) * weightBulletsVsRequired
		appliedWeight += weightBulletsVsRequired
	}
	if len(preferred) > 0 && len(bulletSkills) > 0 {
		score += skills.Jaccard(bulletSkills, preferred) * weightBulletsVsPreferred
		appliedWeight += weightBulletsVsPreferred
	}

	// Name keywords compare the raw case-folded job skill strings against
	// the project name, since alias resolution would defeat substring hits.
	if keywordScore, applies := nameKeywordScore(project.Name, jobSkills); applies {
		score += keywordScore * weightNameKeywords
		appliedWeight += weightNameKeywords
	}

	if appliedWeight == 0 {
		return 0.0
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

// nameKeywordScore returns the fraction of job skills appearing as a
// substring of the project name. The second return is false when the job
// has no required or preferred skills at all.
func nameKeywordScore(projectName string, jobSkills *types.JobSkills) (float64, bool) {
	nameLower := strings.ToLower(projectName)

	total := 0
	hits := 0
	count := func(list []string) {
		for _, skill := range list {
			trimmed := strings.ToLower(strings.TrimSpace(skill))
			if trimmed == "" {
				continue
			}
			total++
			if strings.Contains(nameLower, trimmed) {
				hits++
			}
		}
	}
	count(jobSkills.RequiredSkills)
	count(jobSkills.PreferredSkills)

	if total == 0 {
		return 0.0, false
	}

	score := float64(hits) / float64(total)
	if score > 1.0 {
		score = 1.0
	}
	return score, true
}
