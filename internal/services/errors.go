package services

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a mandatory field that was missing or
// malformed. It is returned before any storage mutation begins.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}

// NotFoundError reports that the targeted row does not exist. No
// mutation is attempted when it is returned.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// StorageError wraps a persistence failure. The surrounding
// transaction is rolled back whenever one surfaces.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ReconciliationError means an association or genre that reconciliation
// expected to remove was already gone. The design never deletes genres
// out-of-band, so this is a defect, not a condition to swallow.
type ReconciliationError struct {
	Genre string
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("genre association %q missing during reconciliation", e.Genre)
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
