package store

import "github.com/pkg/errors"

// Sentinel errors for the store package. Repos wrap the underlying cause, so
// check with errors.Is.
var (
	ErrStorageRead  = errors.New("store: read failed")
	ErrStorageWrite = errors.New("store: write failed")
)

// storageError tags a wrapped cause with one of the sentinels. errors.Is
// matches both the sentinel and anything in the cause chain.
type storageError struct {
	kind  error
	cause error
}

func (e *storageError) Error() string { return e.kind.Error() + ": " + e.cause.Error() }

func (e *storageError) Is(target error) bool { return target == e.kind }

func (e *storageError) Unwrap() error { return e.cause }

func readFailed(err error, format string, args ...any) error {
	return &storageError{kind: ErrStorageRead, cause: errors.Wrapf(err, format, args...)}
}

func writeFailed(err error, format string, args ...any) error {
	return &storageError{kind: ErrStorageWrite, cause: errors.Wrapf(err, format, args...)}
}
