package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Schema file names under the repository's schemas/ directory.
const (
	resumeSchema     = "resume.schema.json"
	jobSkillsSchema  = "job_skills.schema.json"
	ontologySchema   = "ontology.schema.json"
	userSkillsSchema = "user_skills.schema.json"
)

// LoadResume loads and validates a resume from a JSON file.
func LoadResume(path string) (*types.Resume, error) {
	var resume types.Resume
	if err := loadValidated(path, resumeSchema, &resume); err != nil {
		return nil, err
	}
	if err := resume.Validate(); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("resume %s failed validation", path),
			Cause:   err,
		}
	}
	return &resume, nil
}

// LoadJobSkills loads the extracted job skill lists from a JSON file.
func LoadJobSkills(path string) (*types.JobSkills, error) {
	var skills types.JobSkills
	if err := loadValidated(path, jobSkillsSchema, &skills); err != nil {
		return nil, err
	}
	return &skills, nil
}

// LoadOntology loads the skill ontology from a JSON file. An empty path
// returns nil, which downstream code treats as exact-match-only.
func LoadOntology(path string) (*types.SkillOntology, error) {
	if path == "" {
		return nil, nil
	}
	var ontology types.SkillOntology
	if err := loadValidated(path, ontologySchema, &ontology); err != nil {
		return nil, err
	}
	return &ontology, nil
}

// LoadUserSkills loads the candidate's affirmed skill list from a JSON file.
// An empty path returns nil; the rewriter then proposes nothing that needs
// the allow-list.
func LoadUserSkills(path string) (*types.UserSkills, error) {
	if path == "" {
		return nil, nil
	}
	var raw struct {
		Skills []string `json:"skills"`
	}
	if err := loadValidated(path, userSkillsSchema, &raw); err != nil {
		return nil, err
	}
	return types.NewUserSkills(raw.Skills), nil
}

// loadValidated reads a JSON file, checks it against its schema when the
// schema file can be located, and unmarshals into out.
func loadValidated(path, schemaFile string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	// Schema files may be absent in stripped-down installs; the struct
	// validators still run in that case.
	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaFile)); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return &LoadError{
				Message: fmt.Sprintf("schema validation failed for %s", path),
				Cause:   err,
			}
		}
	}

	if err := json.Unmarshal(content, out); err != nil {
		return &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	return nil
}
