package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets a shop, service or
// booking that does not exist.
var ErrNotFound = errors.New("record not found")

// ErrStorageUnavailable signals that the local data file could not be read.
// The local store recovers by falling back to the built-in default dataset,
// so callers normally only see this in logs.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ValidationError reports a malformed or missing field on a write request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// BackendError wraps a transport or storage failure. Op names the logical
// operation that failed ("shops.select", "services.insert", ...); the cause
// is opaque to callers. Operations are never retried.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend operation %s failed: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
