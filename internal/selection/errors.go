package selection

import "fmt"

// ProfileNotFoundError indicates a profile id absent from the profile set.
// Callers must handle it and surface a user-facing message; it is never
// retried internally.
type ProfileNotFoundError struct {
	ProfileID string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.ProfileID)
}

// InvalidProfileError indicates an ad hoc profile object missing the fields
// scoring depends on, most importantly priority_tags.
type InvalidProfileError struct {
	Message string
	Cause   error
}

func (e *InvalidProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid profile: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid profile: %s", e.Message)
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}
