package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter        = errors.New("invalid parameter")
	ErrInvalidConstructionDate = errors.New("invalid construction date")
	ErrDuplicateIdentifier     = errors.New("unit already exists")
	ErrNotFound                = errors.New("unit does not exist")
	ErrStorageFailure          = errors.New("storage failure")
)

// StorageError reports an unreadable, unwritable or corrupt backing store.
// It is not recoverable; callers abort and surface it.
type StorageError struct {
	Op       string
	Location string
	Err      error
}

func (e *StorageError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("storage failure: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage failure: %s %s: %v", e.Op, e.Location, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorageFailure }
