package domain

import (
	"errors"
)

// Error taxonomy for link operations. Transport layers match these with
// errors.Is to pick status codes.
var (
	// ErrInvalidURL is returned when a destination is not an absolute
	// http or https URL.
	ErrInvalidURL = errors.New("invalid URL: must be absolute with http or https scheme")

	// ErrInvalidCode is returned when a code is not 6-8 alphanumeric characters.
	ErrInvalidCode = errors.New("invalid code: must be 6-8 alphanumeric characters")

	// ErrCodeConflict is returned when a create collides with an existing code.
	ErrCodeConflict = errors.New("code already in use")

	// ErrNotFound is returned when no link exists for a code.
	ErrNotFound = errors.New("link not found")

	// ErrDuplicateCode signals a store uniqueness violation on insert. It is
	// internal to the repository layer; the service translates it to
	// ErrCodeConflict and never exposes it.
	ErrDuplicateCode = errors.New("duplicate code")
)
