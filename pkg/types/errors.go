package types

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	ErrNotFound       = errors.New("book not found")
	ErrNotInitialized = errors.New("catalog is not initialized")
)

// StorageError reports a failure in the backing store. Op names the catalog
// operation that was aborted; the in-memory collection is unchanged when a
// StorageError is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
