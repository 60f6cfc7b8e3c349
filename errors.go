package tecplot

import "fmt"

// ValidationError reports invalid input. It is returned before any file
// is created, so a ValidationError guarantees no artifacts on disk.
type ValidationError struct {
	msg string
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return "tecplot: invalid input: " + e.msg
}

// StorageError wraps a failure while writing the container or macro
// file. A partially written container may remain on disk; it is not
// removed.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("tecplot: writing %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
