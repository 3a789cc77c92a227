package repository

import "errors"

// Sentinel errors returned by repository operations. Callers match them
// with errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrValidation indicates caller-supplied data violates a field
	// constraint, e.g. a username shorter than three characters.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness violation, e.g. a username that
	// another account already owns.
	ErrConflict = errors.New("conflict")

	// ErrNotFound indicates the operation targets an id that does not
	// exist where absence is not a valid outcome, e.g. an update.
	ErrNotFound = errors.New("not found")
)
