package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for upstream lookups that did not yield usable data.
var (
	// ErrNotFound is returned when the profile service has no record for a fid.
	ErrNotFound = errors.New("requested resource not found")

	// ErrMalformed is returned when an upstream body cannot be interpreted.
	ErrMalformed = errors.New("malformed upstream response")
)
