package dataset

import "fmt"

// LoadError represents an error during document I/O or JSON parsing.
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error for %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
