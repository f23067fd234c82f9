// Package library stores the reusable project library as a JSON file.
package library

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("library load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("library load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents an error while persisting the library
type SaveError struct {
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("library save error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("library save error: %s", e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
