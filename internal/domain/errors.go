package domain

import "errors"

// Domain errors represent error conditions in the journal domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrWrite is returned when a sink fails to open, write or close its destination.
	ErrWrite = errors.New("journal: write failed")

	// ErrEmptyDestination is returned when Save is called without a destination.
	ErrEmptyDestination = errors.New("journal: empty destination")

	// ErrSnapshotMismatch is returned when a stored snapshot belongs to a different record.
	ErrSnapshotMismatch = errors.New("journal: snapshot belongs to another record")

	// ErrCorruptSnapshot is returned when a snapshot's numbering is inconsistent.
	ErrCorruptSnapshot = errors.New("journal: corrupt snapshot")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("journal: invalid configuration")
)
