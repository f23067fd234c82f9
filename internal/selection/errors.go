// Package selection provides relevance scoring and selection of candidate
// projects for a tailored resume.
package selection

import "fmt"

// Error represents an error that occurs while reading the project library.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
