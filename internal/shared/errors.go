package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the resource already exists.
	ErrConflict = errors.New("conflict")
	// ErrEmpty indicates a collection holds no records.
	ErrEmpty = errors.New("empty")
)
