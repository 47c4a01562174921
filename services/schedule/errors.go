package schedule

import "fmt"

// ValidationError reports missing or malformed user input. The operation is
// aborted before any store call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// OverlapError reports a candidate window colliding with an existing slot.
type OverlapError struct {
	Start string
	End   string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("slot %s - %s overlaps an existing slot", e.Start, e.End)
}

// NotFoundError reports a referenced staff member, appointment or session that
// no longer exists at read or write time.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// StoreError wraps a failed read or write against the backing store. The
// operation is left in its pre-write state; retrying is up to the user.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
