package service

import "errors"

var (
	// ErrPhotoWrite means the photo payload could not be persisted to
	// storage; the whole create/update aborts.
	ErrPhotoWrite = errors.New("photo write failed")

	// ErrStoreUnavailable means the record store could not be reached
	// or rejected the operation.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// ValidationError carries field name -> first error message for a
// rejected submission. No store mutation or photo write happens when
// one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "record validation failed"
}
