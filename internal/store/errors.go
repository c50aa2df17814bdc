package store

import "errors"

// Sentinel errors returned at the repository boundary. Callers branch on
// these; the HTTP layer converts them to status codes in one place.
var (
	// ErrDuplicateEmail is returned when an account with the same
	// normalized email already exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound means no matching row. It is not a storage failure:
	// a fresh account with no profile yet reads back as ErrNotFound.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRole is returned for a role outside passenger/bus_operator.
	ErrInvalidRole = errors.New("invalid role")

	// ErrConstraint covers any other constraint violation on write,
	// such as a second profile insert for the same account.
	ErrConstraint = errors.New("constraint violation")
)
