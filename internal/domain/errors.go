package domain

import "errors"

// Error taxonomy of the catalog core. Callers match with errors.Is.
var (
	// ErrValidation marks a rejected mutation: empty required field,
	// unknown value, or a malformed request payload.
	ErrValidation = errors.New("validation failed")

	// ErrLastCategory marks the rejected deletion of the sole
	// remaining category. The catalog always keeps at least one.
	ErrLastCategory = errors.New("cannot delete the last category")

	// ErrStorage marks a durable read/write failure. The in-memory
	// state has been rolled back to the last durable value.
	ErrStorage = errors.New("storage failure")

	// ErrBackupFormat marks a backup document that does not parse or
	// does not carry a links array. Nothing was imported.
	ErrBackupFormat = errors.New("invalid backup format")

	// ErrRemote marks a failure of an external AI collaborator.
	// It never affects catalog state.
	ErrRemote = errors.New("remote service failure")

	// ErrLocked marks an operation rejected because the access gate
	// is still locked.
	ErrLocked = errors.New("catalog is locked")
)
