// Package main implements the resume_matcher CLI for skill matching and resume tailoring.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// resolveConfig merges CLI flag values over an optional config file and the
// shipped defaults, then validates the result. Flag values win over the
// config file, which wins over defaults.
func resolveConfig(flags config.Config, configPath string) (config.Config, error) {
	defaults := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		defaults = *loaded
	}

	merged := flags.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadMatchInputs loads the resume, job skills, and the optional ontology
// and user-skills allow-list named by the resolved configuration.
func loadMatchInputs(cfg config.Config) (*types.Resume, *types.JobSkills, *types.SkillOntology, *types.UserSkills, error) {
	if cfg.Resume == "" {
		return nil, nil, nil, nil, fmt.Errorf("resume path is required (set --resume or the config file)")
	}
	if cfg.Job == "" {
		return nil, nil, nil, nil, fmt.Errorf("job skills path is required (set --job or the config file)")
	}

	resume, err := ingestion.LoadResume(cfg.Resume)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	jobSkills, err := ingestion.LoadJobSkills(cfg.Job)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ontology, err := ingestion.LoadOntology(cfg.Ontology)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	userSkills, err := ingestion.LoadUserSkills(cfg.UserSkills)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return resume, jobSkills, ontology, userSkills, nil
}

// resolveAPIKey prefers the explicit value and falls back to the
// GEMINI_API_KEY environment variable.
func resolveAPIKey(value string) string {
	if value != "" {
		return value
	}
	return os.Getenv("GEMINI_API_KEY")
}

// resolveDatabaseURL prefers the explicit value and falls back to the
// DATABASE_URL environment variable.
func resolveDatabaseURL(value string) string {
	if value != "" {
		return value
	}
	return os.Getenv("DATABASE_URL")
}

// writeJSONOutput marshals v with indentation and writes it to path,
// creating the output directory when needed.
func writeJSONOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
