// Package matching provides skill-gap scoring between resumes and job
// requirements, job-to-job similarity, and reuse detection for previously
// generated resumes.
package matching

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/types"
)

// MemoryResumeStore is an in-process ResumeStore. It backs runs without a
// database and the test suite. A completed append is visible to subsequent
// reads.
type MemoryResumeStore struct {
	resumes []StoredResume
}

// NewMemoryResumeStore creates an empty in-memory store.
func NewMemoryResumeStore() *MemoryResumeStore {
	return &MemoryResumeStore{}
}

// Append stores a generated resume with its originating job skills and
// returns the identifier assigned to it.
func (s *MemoryResumeStore) Append(resume *types.Resume, jobSkills *types.JobSkills, generatedAt time.Time) uuid.UUID {
	id := uuid.New()
	s.resumes = append(s.resumes, StoredResume{
		ID:          id,
		Resume:      resume,
		JobSkills:   jobSkills,
		GeneratedAt: generatedAt,
	})
	return id
}

// ListGeneratedResumes returns all stored resumes in insertion order.
func (s *MemoryResumeStore) ListGeneratedResumes(_ context.Context) ([]StoredResume, error) {
	out := make([]StoredResume, len(s.resumes))
	copy(out, s.resumes)
	return out, nil
}
