package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResume_ValidFile(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "valid", "resume.json")

	resume, err := LoadResume(path)
	require.NoError(t, err)
	require.NotNil(t, resume)

	assert.Equal(t, "Jane Doe", resume.Name)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Organization)
	require.Len(t, resume.Experience[0].Bullets, 2)
	assert.Equal(t, []string{"Python", "Airflow"}, resume.Experience[0].Bullets[0].Skills)
	require.Len(t, resume.Projects, 1)
	assert.Equal(t, "Log Analyzer", resume.Projects[0].Name)
}

func TestLoadResume_FileNotFound(t *testing.T) {
	_, err := LoadResume("nonexistent_file.json")
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
}

func TestLoadResume_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	invalidJSON := filepath.Join(tmpDir, "invalid.json")
	err := os.WriteFile(invalidJSON, []byte("{ invalid json }"), 0644)
	require.NoError(t, err)

	_, err = LoadResume(invalidJSON)
	require.Error(t, err)
	assert.IsType(t, &LoadError{}, err)
}

func TestLoadResume_MissingName(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "invalid", "resume_missing_name.json")

	_, err := LoadResume(path)
	require.Error(t, err)
	assert.IsType(t, &LoadError{}, err)
}

func TestLoadResume_BulletOverLimit(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.json")
	long := strings.Repeat("x", 200)
	content := `{
		"name": "Jane Doe",
		"experience": [
			{"organization": "Acme", "bullets": [{"text": "` + long + `"}]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadResume(path)
	require.Error(t, err)
}

func TestLoadJobSkills_ValidFile(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "valid", "job_skills.json")

	skills, err := LoadJobSkills(path)
	require.NoError(t, err)
	require.NotNil(t, skills)
	assert.Equal(t, []string{"Python", "Docker", "Kubernetes"}, skills.RequiredSkills)
	assert.Equal(t, []string{"Go", "Terraform"}, skills.PreferredSkills)
	assert.Equal(t, []string{"Communication", "Mentoring"}, skills.SoftSkills)
}

func TestLoadJobSkills_EmptyObject(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	skills, err := LoadJobSkills(path)
	require.NoError(t, err)
	assert.True(t, skills.IsEmpty())
}

func TestLoadOntology_ValidFile(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "valid", "ontology.json")

	ontology, err := LoadOntology(path)
	require.NoError(t, err)
	require.NotNil(t, ontology)

	skill := ontology.FindSkill("k8s")
	require.NotNil(t, skill)
	assert.Equal(t, "Kubernetes", skill.Name)
	assert.Equal(t, "Infrastructure", skill.Category)
}

func TestLoadOntology_EmptyPath(t *testing.T) {
	ontology, err := LoadOntology("")
	require.NoError(t, err)
	assert.Nil(t, ontology)
}

func TestLoadUserSkills_ValidFile(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "valid", "user_skills.json")

	userSkills, err := LoadUserSkills(path)
	require.NoError(t, err)
	require.NotNil(t, userSkills)
	assert.True(t, userSkills.Contains("python"))
	assert.False(t, userSkills.Contains("Rust"))
}

func TestLoadUserSkills_EmptyPath(t *testing.T) {
	userSkills, err := LoadUserSkills("")
	require.NoError(t, err)
	assert.Nil(t, userSkills)
}
