package search

import "fmt"

// ValidationError reports an input that failed shape or type checks. It is
// returned before any I/O is attempted and is never retried internally.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("search: invalid %s: %s", e.Field, e.Reason)
}

// StorageError reports a failed persistence call. It wraps the underlying
// driver error; retry policy is the caller's decision.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("search: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
