package selection

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a minimal in-memory ProjectStore for selector tests.
type memStore struct {
	projects []types.ProjectItem
	err      error
}

func (s *memStore) GetAllProjects() ([]types.ProjectItem, error) {
	return s.projects, s.err
}

func (s *memStore) AddProject(project types.ProjectItem) error {
	s.projects = append(s.projects, project)
	return nil
}

func (s *memStore) RemoveProject(name string) (bool, error) {
	for i, p := range s.projects {
		if p.Name == name {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newSelector(projects ...types.ProjectItem) *ProjectSelector {
	return NewProjectSelector(&memStore{projects: projects}, nil)
}

func TestScoreProject_TechStackVsRequiredOnly(t *testing.T) {
	selector := newSelector()
	project := &types.ProjectItem{
		Name:      "Analytics",
		TechStack: []string{"Python", "Docker"},
	}
	job := &types.JobSkills{RequiredSkills: []string{"Python"}}

	// Jaccard({python,docker},{python}) = 0.5 at weight 2.0, plus the
	// name-keyword signal (no hits) at weight 0.5: 1.0 / 2.5.
	score := selector.ScoreProject(project, job)
	assert.InDelta(t, 0.4, score, 0.001)
}

func TestScoreProject_NameKeywordHit(t *testing.T) {
	selector := newSelector()
	project := &types.ProjectItem{
		Name:      "python-tool",
		TechStack: []string{"Python", "Docker"},
	}
	job := &types.JobSkills{RequiredSkills: []string{"Python"}}

	// (0.5*2.0 + 1.0*0.5) / 2.5
	score := selector.ScoreProject(project, job)
	assert.InDelta(t, 0.6, score, 0.001)
}

func TestScoreProject_OrderInvariant(t *testing.T) {
	selector := newSelector()
	job := &types.JobSkills{
		RequiredSkills:  []string{"Go", "Kubernetes", "Docker"},
		PreferredSkills: []string{"Terraform", "AWS"},
	}
	shuffledJob := &types.JobSkills{
		RequiredSkills:  []string{"Docker", "Go", "Kubernetes"},
		PreferredSkills: []string{"AWS", "Terraform"},
	}

	project := &types.ProjectItem{
		Name:      "infra",
		TechStack: []string{"Kubernetes", "Go"},
		Bullets:   []types.Bullet{{Text: "Provisioned clusters", Skills: []string{"Terraform", "AWS"}}},
	}
	shuffledProject := &types.ProjectItem{
		Name:      "infra",
		TechStack: []string{"Go", "Kubernetes"},
		Bullets:   []types.Bullet{{Text: "Provisioned clusters", Skills: []string{"AWS", "Terraform"}}},
	}

	assert.Equal(t, selector.ScoreProject(project, job), selector.ScoreProject(shuffledProject, shuffledJob))
}

func TestScoreProject_AlwaysInUnitRange(t *testing.T) {
	selector := newSelector()
	projects := []types.ProjectItem{
		{Name: "empty"},
		{Name: "python", TechStack: []string{"Python"}},
		{
			Name:      "everything python go docker",
			TechStack: []string{"Python", "Go", "Docker"},
			Bullets:   []types.Bullet{{Text: "Did it all", Skills: []string{"Python", "Go", "Docker"}}},
		},
	}
	jobs := []*types.JobSkills{
		{},
		{RequiredSkills: []string{"Python"}},
		{RequiredSkills: []string{"Python", "Go", "Docker"}, PreferredSkills: []string{"Python", "Go", "Docker"}},
	}

	for _, project := range projects {
		for _, job := range jobs {
			score := selector.ScoreProject(&project, job)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestScoreProject_EmptyJobSkills(t *testing.T) {
	selector := newSelector()
	project := &types.ProjectItem{Name: "anything", TechStack: []string{"Python"}}

	assert.Equal(t, 0.0, selector.ScoreProject(project, &types.JobSkills{}))
}

func TestSelectProjects_ThresholdAndCap(t *testing.T) {
	strong := types.ProjectItem{Name: "match", TechStack: []string{"Python"}}
	weak := types.ProjectItem{Name: "offtopic", TechStack: []string{"Photoshop"}}

	selector := newSelector(weak, strong)
	job := &types.JobSkills{RequiredSkills: []string{"Python"}}

	selected, err := selector.SelectProjects(job, 4, 0.3)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "match", selected[0].Name)

	capped, err := selector.SelectProjects(job, 0, 0.0)
	require.NoError(t, err)
	assert.Empty(t, capped)
}

func TestSelectProjects_SortedDescendingStableTies(t *testing.T) {
	full := types.ProjectItem{Name: "full", TechStack: []string{"Python", "Go"}}
	halfA := types.ProjectItem{Name: "first-half", TechStack: []string{"Python", "Docker"}}
	halfB := types.ProjectItem{Name: "second-half", TechStack: []string{"Go", "Redis"}}

	selector := newSelector(halfA, full, halfB)
	job := &types.JobSkills{RequiredSkills: []string{"Python", "Go"}}

	selected, err := selector.SelectProjects(job, 4, 0.0)
	require.NoError(t, err)
	require.Len(t, selected, 3)
	assert.Equal(t, "full", selected[0].Name)
	// Equal scores keep original library order.
	assert.Equal(t, "first-half", selected[1].Name)
	assert.Equal(t, "second-half", selected[2].Name)
}

func TestSelectProjects_EmptyLibrary(t *testing.T) {
	selector := newSelector()

	selected, err := selector.SelectProjects(&types.JobSkills{RequiredSkills: []string{"Go"}}, 4, 0.3)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestSelectProjects_StoreFailure(t *testing.T) {
	selector := NewProjectSelector(&memStore{err: errors.New("disk gone")}, nil)

	_, err := selector.SelectProjects(&types.JobSkills{}, 4, 0.3)
	var selErr *Error
	assert.ErrorAs(t, err, &selErr)
}
