package store

import "errors"

// Sentinel errors shared by all store implementations. Handlers map these
// to HTTP status codes with errors.Is.
var (
	// ErrNotFound is returned when no document matches the identifier.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned when an identifier is not a valid ObjectID
	// hex string.
	ErrInvalidID = errors.New("invalid document id")
)
