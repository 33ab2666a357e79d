package model

import "errors"

// Validation and reference errors surfaced at the service boundary.
// Anything else propagating out of a service is an infrastructure failure
// and safe to retry.
var (
	ErrUnknownJob         = errors.New("unknown job")
	ErrUnknownWorker      = errors.New("unknown worker")
	ErrInvalidAction      = errors.New("invalid action")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
