package common

import "errors"

// Index errors. All of them are recoverable and reported to the caller.
var (
	ErrDuplicateID    = errors.New("duplicate student id")
	ErrNotFound       = errors.New("student not found")
	ErrArityMismatch  = errors.New("mark count does not match subject count")
	ErrInvalidStudent = errors.New("invalid student")
)
