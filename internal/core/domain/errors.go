package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingMember indicates a required document is absent from a save archive.
	ErrMissingMember = errors.New("file not found in archive")

	// ErrNotificationsClosed indicates the progress observer stopped listening.
	ErrNotificationsClosed = errors.New("progress notifications closed")

	// ErrNoAvailableName indicates every candidate output file name is taken.
	ErrNoAvailableName = errors.New("no available save name")

	// ErrUnsupportedField indicates an edit targets a field the save does not carry.
	ErrUnsupportedField = errors.New("unsupported field")
)
