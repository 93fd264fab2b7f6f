package services

import "errors"

// Failure taxonomy shared by repositories, services and handlers. All
// failures are synchronous and final; there is no internal retry and no
// partial-success state. Handlers map these to HTTP status codes.
var (
	// ErrNotFound: a referenced user, vehicle, track, reservation,
	// conversation or team does not exist for an operation requiring it.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists: a uniqueness guard rejected a duplicate insert
	// (favorite pair, pending team application).
	ErrAlreadyExists = errors.New("already exists")
)
