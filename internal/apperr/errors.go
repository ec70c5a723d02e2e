package apperr

import "errors"

var (
	// ErrNotFound is returned when a section document does not exist on disk.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when adding a tag or technology that is
	// already present. Callers surface it as a warning, not a failure.
	ErrDuplicate = errors.New("duplicate entry")
	// ErrBuiltin is returned on attempts to delete a built-in status entry.
	ErrBuiltin = errors.New("built-in status")
	// ErrStaleDraft is returned when a restored field draft is past expiry.
	ErrStaleDraft = errors.New("draft expired")
	// ErrMalformed is returned at the parse boundary for input that is not
	// a valid JSON object.
	ErrMalformed = errors.New("malformed document")
)
