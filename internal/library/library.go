// Package library stores the reusable project library as a JSON file.
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-matcher/internal/types"
)

// FileLibrary is a project library persisted to a single JSON file. Every
// mutation writes the file back, so the on-disk copy is always current.
// Safe for concurrent use.
type FileLibrary struct {
	mu       sync.Mutex
	path     string
	projects []types.ProjectItem
}

// Load opens the library at path. A missing file yields an empty library so
// a first run needs no setup step.
func Load(path string) (*FileLibrary, error) {
	lib := &FileLibrary{path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	if err := json.Unmarshal(content, &lib.projects); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	for _, project := range lib.projects {
		if strings.TrimSpace(project.Name) == "" {
			return nil, &LoadError{
				Message: fmt.Sprintf("project with empty name in %s", path),
			}
		}
	}

	return lib, nil
}

// GetAllProjects returns a copy of every stored project, sorted by name so
// downstream ranking sees a stable order.
func (l *FileLibrary) GetAllProjects() ([]types.ProjectItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]types.ProjectItem, len(l.projects))
	copy(out, l.projects)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// GetProject looks up a project by name, case-insensitively.
func (l *FileLibrary) GetProject(name string) (*types.ProjectItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if idx := l.indexOf(name); idx >= 0 {
		project := l.projects[idx]
		return &project, true
	}
	return nil, false
}

// AddProject inserts a project, replacing any existing entry with the same
// name. The library file is rewritten before returning.
func (l *FileLibrary) AddProject(project types.ProjectItem) error {
	if strings.TrimSpace(project.Name) == "" {
		return &SaveError{Message: "project name must not be empty"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if idx := l.indexOf(project.Name); idx >= 0 {
		l.projects[idx] = project
	} else {
		l.projects = append(l.projects, project)
	}
	return l.persist()
}

// RemoveProject deletes the named project. The bool reports whether an entry
// was found; removing an absent project is not an error.
func (l *FileLibrary) RemoveProject(name string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(name)
	if idx < 0 {
		return false, nil
	}
	l.projects = append(l.projects[:idx], l.projects[idx+1:]...)
	if err := l.persist(); err != nil {
		return false, err
	}
	return true, nil
}

// Len reports the number of stored projects.
func (l *FileLibrary) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.projects)
}

func (l *FileLibrary) indexOf(name string) int {
	needle := strings.TrimSpace(name)
	for i, project := range l.projects {
		if strings.EqualFold(project.Name, needle) {
			return i
		}
	}
	return -1
}

func (l *FileLibrary) persist() error {
	content, err := json.MarshalIndent(l.projects, "", "  ")
	if err != nil {
		return &SaveError{
			Message: "failed to marshal JSON",
			Cause:   err,
		}
	}
	if err := os.WriteFile(l.path, content, 0o644); err != nil {
		return &SaveError{
			Message: fmt.Sprintf("failed to write file %s", l.path),
			Cause:   err,
		}
	}
	return nil
}
