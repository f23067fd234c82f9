// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default thresholds applied when the config file and flags leave them unset.
const (
	DefaultMinFitScore     = 0.90
	DefaultMinSimilarity   = 0.85
	DefaultMaxProjects     = 4
	DefaultMinProjectScore = 0.3
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume         string `json:"resume,omitempty"`          // Path to resume JSON file
	Job            string `json:"job,omitempty"`             // Path to job skills JSON file
	Ontology       string `json:"ontology,omitempty"`        // Path to skill ontology JSON file
	UserSkills     string `json:"user_skills,omitempty"`     // Path to user skills allow-list JSON file
	ProjectLibrary string `json:"project_library,omitempty"` // Path to project library JSON file

	// Reuse thresholds
	MinFitScore   float64 `json:"min_fit_score,omitempty"`  // Minimum fit score for reuse (0.0-1.0)
	MinSimilarity float64 `json:"min_similarity,omitempty"` // Minimum job similarity for reuse (0.0-1.0)

	// Project selection
	MaxProjects     int     `json:"max_projects,omitempty"`      // Maximum projects to select
	MinProjectScore float64 `json:"min_project_score,omitempty"` // Minimum relevance score (0.0-1.0)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for bullet refinement
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.MinFitScore < 0 || c.MinFitScore > 1 {
		return fmt.Errorf("config error: 'min_fit_score' must be between 0.0 and 1.0")
	}
	if c.MinSimilarity < 0 || c.MinSimilarity > 1 {
		return fmt.Errorf("config error: 'min_similarity' must be between 0.0 and 1.0")
	}
	if c.MinProjectScore < 0 || c.MinProjectScore > 1 {
		return fmt.Errorf("config error: 'min_project_score' must be between 0.0 and 1.0")
	}
	if c.MaxProjects < 0 {
		return fmt.Errorf("config error: 'max_projects' must be non-negative")
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{
		"resume":          c.Resume,
		"job":             c.Job,
		"ontology":        c.Ontology,
		"user_skills":     c.UserSkills,
		"project_library": c.ProjectLibrary,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Ontology == "" {
		result.Ontology = defaults.Ontology
	}
	if result.UserSkills == "" {
		result.UserSkills = defaults.UserSkills
	}
	if result.ProjectLibrary == "" {
		result.ProjectLibrary = defaults.ProjectLibrary
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: zero means unset, fall back to the shipped defaults
	result.MinFitScore = mergeFloat(result.MinFitScore, defaults.MinFitScore, DefaultMinFitScore)
	result.MinSimilarity = mergeFloat(result.MinSimilarity, defaults.MinSimilarity, DefaultMinSimilarity)
	result.MinProjectScore = mergeFloat(result.MinProjectScore, defaults.MinProjectScore, DefaultMinProjectScore)
	if result.MaxProjects == 0 {
		if defaults.MaxProjects > 0 {
			result.MaxProjects = defaults.MaxProjects
		} else {
			result.MaxProjects = DefaultMaxProjects
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func mergeFloat(value, preferred, fallback float64) float64 {
	if value > 0 {
		return value
	}
	if preferred > 0 {
		return preferred
	}
	return fallback
}
