package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reuseTestJob() *types.JobSkills {
	return &types.JobSkills{
		RequiredSkills:  []string{"Python", "Kubernetes"},
		PreferredSkills: []string{"Go"},
	}
}

func reuseTestResume(skillList ...string) *types.Resume {
	return &types.Resume{
		Name: "Jane Doe",
		Experience: []types.ExperienceItem{
			{
				Organization: "Acme",
				Bullets:      []types.Bullet{{Text: "Did the work", Skills: skillList}},
			},
		},
	}
}

func newTestChecker(store ResumeStore) *ReuseChecker {
	matcher := NewSkillMatcher(nil, DefaultFitWeights())
	return NewReuseChecker(store, matcher, nil)
}

func TestFindReusableResume_EmptyStore(t *testing.T) {
	checker := newTestChecker(NewMemoryResumeStore())

	candidate, err := checker.FindReusableResume(context.Background(), reuseTestJob(), 0.9, 0.85)

	require.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestFindReusableResume_QualifyingCandidate(t *testing.T) {
	store := NewMemoryResumeStore()
	id := store.Append(reuseTestResume("Python", "Kubernetes", "Go"), reuseTestJob(), time.Now())

	checker := newTestChecker(store)
	candidate, err := checker.FindReusableResume(context.Background(), reuseTestJob(), 0.9, 0.85)

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, id, candidate.ID)
	assert.GreaterOrEqual(t, candidate.FitScore, 0.9)
	assert.GreaterOrEqual(t, candidate.Similarity, 0.85)
}

func TestFindReusableResume_RejectsLowSimilarity(t *testing.T) {
	store := NewMemoryResumeStore()
	// High fit against the target job, but generated for an unrelated one.
	unrelatedJob := &types.JobSkills{RequiredSkills: []string{"COBOL", "Fortran"}}
	store.Append(reuseTestResume("Python", "Kubernetes", "Go"), unrelatedJob, time.Now())

	checker := newTestChecker(store)
	candidate, err := checker.FindReusableResume(context.Background(), reuseTestJob(), 0.9, 0.85)

	require.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestFindReusableResume_RejectsLowFit(t *testing.T) {
	store := NewMemoryResumeStore()
	// Similar job, but the stored resume only covers half the requirements.
	store.Append(reuseTestResume("Python"), reuseTestJob(), time.Now())

	checker := newTestChecker(store)
	candidate, err := checker.FindReusableResume(context.Background(), reuseTestJob(), 0.9, 0.85)

	require.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestFindReusableResume_HighestFitWins(t *testing.T) {
	store := NewMemoryResumeStore()
	store.Append(reuseTestResume("Python", "Kubernetes"), reuseTestJob(), time.Now())
	best := store.Append(reuseTestResume("Python", "Kubernetes", "Go"), reuseTestJob(), time.Now())

	checker := newTestChecker(store)
	candidate, err := checker.FindReusableResume(context.Background(), reuseTestJob(), 0.5, 0.85)

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, best, candidate.ID)
}

func TestFindReusableResume_TieBrokenByRecency(t *testing.T) {
	store := NewMemoryResumeStore()
	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now()

	store.Append(reuseTestResume("Python", "Kubernetes", "Go"), reuseTestJob(), older)
	recent := store.Append(reuseTestResume("Python", "Kubernetes", "Go"), reuseTestJob(), newer)

	checker := newTestChecker(store)
	candidate, err := checker.FindReusableResume(context.Background(), reuseTestJob(), 0.9, 0.85)

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, recent, candidate.ID)
}

type failingStore struct{}

func (failingStore) ListGeneratedResumes(context.Context) ([]StoredResume, error) {
	return nil, errors.New("connection refused")
}

func TestFindReusableResume_StoreFailurePropagates(t *testing.T) {
	checker := newTestChecker(failingStore{})

	_, err := checker.FindReusableResume(context.Background(), reuseTestJob(), 0.9, 0.85)

	assert.Error(t, err)
}

func TestMemoryResumeStore_AppendVisibleToSubsequentReads(t *testing.T) {
	store := NewMemoryResumeStore()
	store.Append(reuseTestResume("Python"), reuseTestJob(), time.Now())

	stored, err := store.ListGeneratedResumes(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
